package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/pkg/apperror"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture() (*OrderService, *fakeStore) {
	store := newFakeStore()
	uow := &fakeUnitOfWork{store: store}
	pricing := NewPricingService(&fakeProductRepository{store: store})
	svc := NewOrderService(uow, &fakeOrderRepository{store: store}, &fakeCustomerRepository{store: store}, pricing, &fakeRefGenerator{})
	return svc, store
}

func TestCreateOrder(t *testing.T) {
	svc, store := newOrderFixture()
	productID := seedProduct(store, "100.00", "7")

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Items: []LineItemInput{
			{ProductID: productID, Quantity: decimal.NewFromInt(2)},
		},
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SO\d{8}[0-9A-F]{4}$`), order.OrderNumber)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, enum.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "200.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "14.00", order.TaxAmount.StringFixed(2))
	assert.Equal(t, "214.00", order.TotalAmount.StringFixed(2))
	assert.Len(t, order.Items, 1)
	assert.Nil(t, order.CreditDueDate)

	stored := store.orders[order.ID]
	require.NotNil(t, stored)
	assert.Equal(t, order.OrderNumber, stored.OrderNumber)
}

func TestCreateOrder_CreditSaleSetsDueDate(t *testing.T) {
	svc, store := newOrderFixture()
	productID := seedProduct(store, "100.00", "7")
	customer := &entity.Customer{
		Code:         "CUST-001",
		Name:         "Somchai Jaidee",
		CreditLimit:  decimal.NewFromInt(1000),
		CreditDays:   45,
		CreditStatus: enum.CreditStatusActive,
		IsActive:     true,
	}
	store.addCustomer(customer)

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   &customer.ID,
		IsCreditSale: true,
		Items: []LineItemInput{
			{ProductID: productID, Quantity: decimal.NewFromInt(1)},
		},
	})

	require.NoError(t, err)
	assert.True(t, order.IsCreditSale)
	require.NotNil(t, order.CreditDueDate)
	expected := time.Now().UTC().AddDate(0, 0, 45)
	assert.WithinDuration(t, expected, *order.CreditDueDate, time.Minute)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	svc, store := newOrderFixture()
	productID := seedProduct(store, "100.00", "7")
	customerID := uuid.New()

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID: &customerID,
		Items: []LineItemInput{
			{ProductID: productID, Quantity: decimal.NewFromInt(1)},
		},
	})

	assert.ErrorIs(t, err, apperror.ErrCustomerNotFound)
}

func TestCreateOrder_PricingErrorAbortsCreate(t *testing.T) {
	svc, store := newOrderFixture()

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Items: []LineItemInput{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)},
		},
	})

	require.Error(t, err)
	assert.Empty(t, store.orders)
}

func TestGetOrder_UnknownID(t *testing.T) {
	svc, _ := newOrderFixture()

	_, err := svc.GetOrder(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
}

func TestListOrders_FiltersByStatus(t *testing.T) {
	svc, store := newOrderFixture()
	seedPendingOrder(store, "100.00", nil)
	completed := seedPendingOrder(store, "200.00", nil)
	store.orders[completed.ID].Status = enum.OrderStatusCompleted

	status := enum.OrderStatusCompleted
	result, err := svc.ListOrders(context.Background(), &repository.OrderFilterParams{
		Pagination: pagination.DefaultPagination(),
		Status:     &status,
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, enum.OrderStatusCompleted, result.Items[0].Status)
	assert.Equal(t, int64(1), result.Pagination.Total)
}
