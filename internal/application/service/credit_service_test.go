package service

import (
	"context"
	"testing"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/flukesan/POS-System/pkg/apperror"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreditFixture(creditLimit, creditBalance string, status enum.CreditStatus) (*CreditService, *fakeStore, uuid.UUID) {
	store := newFakeStore()
	uow := &fakeUnitOfWork{store: store}
	svc := NewCreditService(uow, &fakeCustomerRepository{store: store}, &fakeCreditRepository{store: store})

	customer := &entity.Customer{
		Code:          "CUST-001",
		Name:          "Somchai Jaidee",
		CreditLimit:   decimal.RequireFromString(creditLimit),
		CreditBalance: decimal.RequireFromString(creditBalance),
		CreditDays:    30,
		CreditStatus:  status,
		IsActive:      true,
	}
	store.addCustomer(customer)
	return svc, store, customer.ID
}

func TestGetSummary(t *testing.T) {
	svc, _, customerID := newCreditFixture("1000.00", "350.00", enum.CreditStatusActive)

	summary, err := svc.GetSummary(context.Background(), customerID)

	require.NoError(t, err)
	assert.Equal(t, customerID, summary.CustomerID)
	assert.Equal(t, "1000.00", summary.CreditLimit.StringFixed(2))
	assert.Equal(t, "350.00", summary.CreditBalance.StringFixed(2))
	assert.Equal(t, "650.00", summary.AvailableCredit.StringFixed(2))
	assert.Equal(t, 30, summary.CreditDays)
	assert.Equal(t, enum.CreditStatusActive, summary.CreditStatus)
}

func TestGetSummary_UnknownCustomer(t *testing.T) {
	svc, _, _ := newCreditFixture("1000.00", "0.00", enum.CreditStatusActive)

	_, err := svc.GetSummary(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
}

func TestRecordPayment_ReducesBalance(t *testing.T) {
	svc, store, customerID := newCreditFixture("1000.00", "350.00", enum.CreditStatusOverdue)

	entry, err := svc.RecordPayment(context.Background(), customerID, decimal.RequireFromString("100.00"), "partial repayment")

	require.NoError(t, err)
	assert.Equal(t, enum.CreditTransactionPayment, entry.Type)
	assert.Equal(t, "350.00", entry.BalanceBefore.StringFixed(2))
	assert.Equal(t, "250.00", entry.BalanceAfter.StringFixed(2))
	assert.NotNil(t, entry.PaidDate)
	assert.Equal(t, "partial repayment", entry.Notes)

	customer := store.customers[customerID]
	assert.Equal(t, "250.00", customer.CreditBalance.StringFixed(2))
	// partial repayment does not clear an overdue flag
	assert.Equal(t, enum.CreditStatusOverdue, customer.CreditStatus)
}

func TestRecordPayment_FullRepaymentResetsStatus(t *testing.T) {
	svc, store, customerID := newCreditFixture("1000.00", "350.00", enum.CreditStatusOverdue)

	entry, err := svc.RecordPayment(context.Background(), customerID, decimal.RequireFromString("350.00"), "")

	require.NoError(t, err)
	assert.True(t, entry.BalanceAfter.IsZero())

	customer := store.customers[customerID]
	assert.True(t, customer.CreditBalance.IsZero())
	assert.Equal(t, enum.CreditStatusActive, customer.CreditStatus)
}

func TestRecordPayment_ExceedsBalanceRejected(t *testing.T) {
	svc, store, customerID := newCreditFixture("1000.00", "350.00", enum.CreditStatusActive)

	_, err := svc.RecordPayment(context.Background(), customerID, decimal.RequireFromString("350.01"), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds outstanding balance")
	assert.Empty(t, store.credits)
	assert.Equal(t, "350.00", store.customers[customerID].CreditBalance.StringFixed(2))
}

func TestRecordPayment_NonPositiveAmountRejected(t *testing.T) {
	svc, _, customerID := newCreditFixture("1000.00", "350.00", enum.CreditStatusActive)

	_, err := svc.RecordPayment(context.Background(), customerID, decimal.Zero, "")
	require.Error(t, err)

	_, err = svc.RecordPayment(context.Background(), customerID, decimal.RequireFromString("-10.00"), "")
	require.Error(t, err)
}

func TestRecordPayment_UnknownCustomer(t *testing.T) {
	svc, _, _ := newCreditFixture("1000.00", "350.00", enum.CreditStatusActive)

	_, err := svc.RecordPayment(context.Background(), uuid.New(), decimal.RequireFromString("100.00"), "")

	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
}

func TestListTransactions(t *testing.T) {
	svc, store, customerID := newCreditFixture("1000.00", "350.00", enum.CreditStatusActive)

	_, err := svc.RecordPayment(context.Background(), customerID, decimal.RequireFromString("50.00"), "")
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), customerID, decimal.RequireFromString("100.00"), "")
	require.NoError(t, err)

	result, err := svc.ListTransactions(context.Background(), customerID, &pagination.PaginationParams{Page: 1, PerPage: 15})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
	assert.Len(t, store.credits, 2)
}

func TestListTransactions_UnknownCustomer(t *testing.T) {
	svc, _, _ := newCreditFixture("1000.00", "0.00", enum.CreditStatusActive)

	_, err := svc.ListTransactions(context.Background(), uuid.New(), pagination.DefaultPagination())

	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
}
