package service

import (
	"context"
	"time"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/pkg/apperror"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditService owns the per-customer credit ledger: the balance, its
// status, and the append-only charge/payment entries. The overdue
// transition is an external reconciliation concern; this service only
// reads and exposes credit_status.
type CreditService struct {
	uow          repository.UnitOfWork
	customerRepo repository.CustomerRepository
	creditRepo   repository.CreditRepository
}

// NewCreditService creates a new credit service
func NewCreditService(
	uow repository.UnitOfWork,
	customerRepo repository.CustomerRepository,
	creditRepo repository.CreditRepository,
) *CreditService {
	return &CreditService{
		uow:          uow,
		customerRepo: customerRepo,
		creditRepo:   creditRepo,
	}
}

// CreditSummary is a customer's current credit position
type CreditSummary struct {
	CustomerID      uuid.UUID         `json:"customer_id"`
	CreditLimit     decimal.Decimal   `json:"credit_limit"`
	CreditBalance   decimal.Decimal   `json:"credit_balance"`
	AvailableCredit decimal.Decimal   `json:"available_credit"`
	CreditDays      int               `json:"credit_days"`
	CreditStatus    enum.CreditStatus `json:"credit_status"`
}

// GetSummary returns the customer's credit position
func (s *CreditService) GetSummary(ctx context.Context, customerID uuid.UUID) (*CreditSummary, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.ErrCustomerNotFound
	}

	return &CreditSummary{
		CustomerID:      customer.ID,
		CreditLimit:     customer.CreditLimit,
		CreditBalance:   customer.CreditBalance,
		AvailableCredit: customer.AvailableCredit(),
		CreditDays:      customer.CreditDays,
		CreditStatus:    customer.CreditStatus,
	}, nil
}

// ListTransactions lists the customer's ledger entries, newest first
func (s *CreditService) ListTransactions(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.CreditTransaction], error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.ErrCustomerNotFound
	}

	entries, total, err := s.creditRepo.ListByCustomer(ctx, customerID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// RecordPayment records a repayment against the customer's outstanding
// balance. The ledger entry and the balance update commit atomically.
// When the balance reaches exactly zero the credit status resets to active.
func (s *CreditService) RecordPayment(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal, notes string) (*entity.CreditTransaction, error) {
	if !amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
	}

	var entry *entity.CreditTransaction
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		customer, err := r.Customers().GetForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperror.ErrCustomerNotFound
		}

		if amount.GreaterThan(customer.CreditBalance) {
			return apperror.NewPaymentExceedsBalanceError(customer.CreditBalance)
		}

		paidDate := time.Now().UTC()
		balanceBefore := customer.CreditBalance
		entry = &entity.CreditTransaction{
			CustomerID:    customer.ID,
			Type:          enum.CreditTransactionPayment,
			Amount:        amount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  balanceBefore.Sub(amount),
			PaidDate:      &paidDate,
			Notes:         notes,
		}
		if err := r.Credits().Create(ctx, entry); err != nil {
			return err
		}

		customer.CreditBalance = entry.BalanceAfter
		if customer.CreditBalance.IsZero() {
			customer.CreditStatus = enum.CreditStatusActive
		}
		return r.Customers().UpdateCredit(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// charge writes a charge entry and raises the customer's balance inside
// an already-open unit of work. The customer row must be locked by the
// caller. Fails when the amount exceeds the available credit.
func (s *CreditService) charge(ctx context.Context, r repository.Repositories, customer *entity.Customer, order *entity.Order, amount decimal.Decimal) (*entity.CreditTransaction, error) {
	available := customer.AvailableCredit()
	if amount.GreaterThan(available) {
		return nil, apperror.NewInsufficientCreditError(available)
	}

	dueDate := order.CreditDueDate
	if dueDate == nil {
		due := time.Now().UTC().AddDate(0, 0, customer.CreditDays)
		dueDate = &due
	}

	balanceBefore := customer.CreditBalance
	entry := &entity.CreditTransaction{
		CustomerID:    customer.ID,
		OrderID:       &order.ID,
		Type:          enum.CreditTransactionCharge,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  balanceBefore.Add(amount),
		DueDate:       dueDate,
	}
	if err := r.Credits().Create(ctx, entry); err != nil {
		return nil, err
	}

	customer.CreditBalance = entry.BalanceAfter
	if err := r.Customers().UpdateCredit(ctx, customer); err != nil {
		return nil, err
	}

	return entry, nil
}
