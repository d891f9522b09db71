package service

import (
	"context"
	"time"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/pkg/apperror"
	"github.com/flukesan/POS-System/pkg/promptpay"
	"github.com/flukesan/POS-System/pkg/refgen"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService coordinates payment settlement. Every settlement path
// runs as one unit of work over locked order, transaction and customer
// rows: concurrent attempts on the same order serialize, and the losers
// observe the committed state and fail instead of double-settling.
type PaymentService struct {
	uow    repository.UnitOfWork
	credit *CreditService
	refs   refgen.Generator
}

// NewPaymentService creates a new payment service
func NewPaymentService(uow repository.UnitOfWork, credit *CreditService, refs refgen.Generator) *PaymentService {
	return &PaymentService{
		uow:    uow,
		credit: credit,
		refs:   refs,
	}
}

// InitiatePaymentInput represents a payment initiation request. Account
// is the receiving account for QR transfers, passed in explicitly so
// tests stay deterministic and multiple accounts are possible.
type InitiatePaymentInput struct {
	OrderID    uuid.UUID
	Method     enum.PaymentMethod
	PaidAmount *decimal.Decimal
	Account    *entity.BankAccount
}

// PaymentResult is the method-specific outcome of a payment initiation
type PaymentResult struct {
	Status         enum.PaymentStatus `json:"status"`
	TransactionRef string             `json:"transaction_ref"`
	Amount         decimal.Decimal    `json:"amount"`
	ChangeAmount   *decimal.Decimal   `json:"change_amount,omitempty"`
	QRCodeData     string             `json:"qr_data,omitempty"`
	CreditBalance  *decimal.Decimal   `json:"credit_balance,omitempty"`
}

// ConfirmPaymentResult is returned by ConfirmPayment
type ConfirmPaymentResult struct {
	OrderNumber string          `json:"order_number"`
	Amount      decimal.Decimal `json:"amount"`
}

// InitiatePayment settles an order with the chosen method. Cash and
// credit settle immediately; QR transfer leaves the order pending until
// ConfirmPayment.
func (s *PaymentService) InitiatePayment(ctx context.Context, input *InitiatePaymentInput) (*PaymentResult, error) {
	if !input.Method.IsValid() {
		return nil, apperror.ErrUnsupportedPaymentMethod
	}

	var result *PaymentResult
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		order, err := r.Orders().GetForUpdate(ctx, input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.ErrOrderNotFound
		}
		if order.Status == enum.OrderStatusCompleted {
			return apperror.ErrOrderAlreadyCompleted
		}
		if order.Status.IsTerminal() {
			return apperror.NewBadRequestError("Order is " + order.Status.String())
		}

		switch input.Method {
		case enum.PaymentMethodCash:
			result, err = s.settleCash(ctx, r, order, input.PaidAmount)
		case enum.PaymentMethodQRPromptPay:
			result, err = s.initiateQR(ctx, r, order, input.Account)
		case enum.PaymentMethodCredit:
			result, err = s.settleCredit(ctx, r, order)
		default:
			err = apperror.ErrUnsupportedPaymentMethod
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *PaymentService) settleCash(ctx context.Context, r repository.Repositories, order *entity.Order, paidAmount *decimal.Decimal) (*PaymentResult, error) {
	paid := order.TotalAmount
	if paidAmount != nil {
		paid = *paidAmount
	}
	change := paid.Sub(order.TotalAmount)
	if change.IsNegative() {
		return nil, apperror.NewInsufficientPaymentError(order.TotalAmount)
	}

	now := time.Now().UTC()
	tx := &entity.PaymentTransaction{
		OrderID:        order.ID,
		TransactionRef: s.refs.TransactionRef(),
		PaymentMethod:  enum.PaymentMethodCash,
		Amount:         order.TotalAmount,
		Status:         enum.PaymentStatusConfirmed,
		ConfirmedAt:    &now,
	}
	if err := r.Payments().Create(ctx, tx); err != nil {
		return nil, err
	}

	order.PaidAmount = paid
	order.ChangeAmount = change
	order.PaymentMethod = enum.PaymentMethodCash
	order.PaymentStatus = enum.PaymentStatusConfirmed
	order.Status = enum.OrderStatusCompleted
	if err := r.Orders().Update(ctx, order); err != nil {
		return nil, err
	}

	return &PaymentResult{
		Status:         enum.PaymentStatusConfirmed,
		TransactionRef: tx.TransactionRef,
		Amount:         order.TotalAmount,
		ChangeAmount:   &change,
	}, nil
}

func (s *PaymentService) initiateQR(ctx context.Context, r repository.Repositories, order *entity.Order, account *entity.BankAccount) (*PaymentResult, error) {
	if account == nil || account.PromptPayID == "" {
		return nil, apperror.ErrNoPaymentAccountConfigured
	}

	qrData := promptpay.BuildPayload(account.PromptPayID, order.TotalAmount, order.OrderNumber)

	tx := &entity.PaymentTransaction{
		OrderID:        order.ID,
		TransactionRef: s.refs.TransactionRef(),
		PaymentMethod:  enum.PaymentMethodQRPromptPay,
		Amount:         order.TotalAmount,
		Status:         enum.PaymentStatusPending,
		QRCodeData:     qrData,
	}
	if err := r.Payments().Create(ctx, tx); err != nil {
		return nil, err
	}

	// the order stays pending: completion happens only via ConfirmPayment
	order.PaymentMethod = enum.PaymentMethodQRPromptPay
	order.QRReference = tx.TransactionRef
	if err := r.Orders().Update(ctx, order); err != nil {
		return nil, err
	}

	return &PaymentResult{
		Status:         enum.PaymentStatusPending,
		TransactionRef: tx.TransactionRef,
		Amount:         order.TotalAmount,
		QRCodeData:     qrData,
	}, nil
}

func (s *PaymentService) settleCredit(ctx context.Context, r repository.Repositories, order *entity.Order) (*PaymentResult, error) {
	if order.CustomerID == nil {
		return nil, apperror.ErrCreditRequiresCustomer
	}

	customer, err := r.Customers().GetForUpdate(ctx, *order.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.ErrCustomerNotFound
	}

	if _, err := s.credit.charge(ctx, r, customer, order, order.TotalAmount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx := &entity.PaymentTransaction{
		OrderID:        order.ID,
		TransactionRef: s.refs.TransactionRef(),
		PaymentMethod:  enum.PaymentMethodCredit,
		Amount:         order.TotalAmount,
		Status:         enum.PaymentStatusConfirmed,
		ConfirmedAt:    &now,
	}
	if err := r.Payments().Create(ctx, tx); err != nil {
		return nil, err
	}

	order.PaidAmount = order.TotalAmount
	order.PaymentMethod = enum.PaymentMethodCredit
	order.PaymentStatus = enum.PaymentStatusConfirmed
	order.Status = enum.OrderStatusCompleted
	if err := r.Orders().Update(ctx, order); err != nil {
		return nil, err
	}

	balance := customer.CreditBalance
	return &PaymentResult{
		Status:         enum.PaymentStatusConfirmed,
		TransactionRef: tx.TransactionRef,
		Amount:         order.TotalAmount,
		CreditBalance:  &balance,
	}, nil
}

// ConfirmPayment confirms a pending transfer after the bank slip is
// verified, completing the linked order atomically. Duplicate calls are
// rejected with AlreadyConfirmed, never silently accepted.
func (s *PaymentService) ConfirmPayment(ctx context.Context, transactionRef string, bankReference, payerName *string) (*ConfirmPaymentResult, error) {
	var result *ConfirmPaymentResult
	err := s.uow.Do(ctx, func(r repository.Repositories) error {
		tx, err := r.Payments().GetByRefForUpdate(ctx, transactionRef)
		if err != nil {
			return err
		}
		if tx == nil {
			return apperror.ErrTransactionNotFound
		}
		if tx.Status == enum.PaymentStatusConfirmed {
			return apperror.ErrAlreadyConfirmed
		}

		now := time.Now().UTC()
		tx.Status = enum.PaymentStatusConfirmed
		tx.ConfirmedAt = &now
		tx.BankReference = bankReference
		tx.PayerName = payerName
		if err := r.Payments().Update(ctx, tx); err != nil {
			return err
		}

		order, err := r.Orders().GetForUpdate(ctx, tx.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.ErrOrderNotFound
		}

		order.PaymentStatus = enum.PaymentStatusConfirmed
		order.Status = enum.OrderStatusCompleted
		order.PaidAmount = tx.Amount
		if err := r.Orders().Update(ctx, order); err != nil {
			return err
		}

		result = &ConfirmPaymentResult{
			OrderNumber: order.OrderNumber,
			Amount:      tx.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
