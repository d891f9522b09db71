package service

import (
	"context"
	"time"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/pkg/apperror"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/flukesan/POS-System/pkg/refgen"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService handles order creation and reads
type OrderService struct {
	uow          repository.UnitOfWork
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	pricing      *PricingService
	refs         refgen.Generator
}

// NewOrderService creates a new order service
func NewOrderService(
	uow repository.UnitOfWork,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	pricing *PricingService,
	refs refgen.Generator,
) *OrderService {
	return &OrderService{
		uow:          uow,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		pricing:      pricing,
		refs:         refs,
	}
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID      *uuid.UUID
	Items           []LineItemInput
	DiscountPercent decimal.Decimal
	Notes           string
	IsCreditSale    bool
}

// CreateOrder prices the requested items and persists the order with its
// line items as one atomic write. The new order starts in pending state.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	var customer *entity.Customer
	if input.CustomerID != nil {
		var err error
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.ErrCustomerNotFound
		}
	}

	priced, err := s.pricing.Price(ctx, input.Items, input.DiscountPercent)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	var creditDueDate *time.Time
	if input.IsCreditSale && customer != nil {
		due := now.AddDate(0, 0, customer.CreditDays)
		creditDueDate = &due
	}

	order := &entity.Order{
		OrderNumber:     s.refs.OrderNumber(now),
		CustomerID:      input.CustomerID,
		OrderDate:       now,
		Status:          enum.OrderStatusPending,
		Subtotal:        priced.Subtotal,
		DiscountPercent: input.DiscountPercent,
		DiscountAmount:  priced.DiscountAmount,
		TaxAmount:       priced.TaxAmount,
		TotalAmount:     priced.TotalAmount,
		PaidAmount:      decimal.Zero,
		ChangeAmount:    decimal.Zero,
		PaymentStatus:   enum.PaymentStatusPending,
		IsCreditSale:    input.IsCreditSale,
		CreditDueDate:   creditDueDate,
		Notes:           input.Notes,
		Items:           priced.Items,
	}

	err = s.uow.Do(ctx, func(r repository.Repositories) error {
		return r.Orders().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves the fully materialized order aggregate
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders lists orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}
