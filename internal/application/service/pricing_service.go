package service

import (
	"context"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// LineItemInput represents a requested order line before pricing
type LineItemInput struct {
	ProductID       uuid.UUID
	Quantity        decimal.Decimal
	UnitPrice       *decimal.Decimal // overrides the product selling price when set
	DiscountPercent decimal.Decimal
}

// PricedOrder is the result of pricing a set of line items. All money
// amounts are rounded to 2 decimal places; quantities keep 3.
type PricedOrder struct {
	Items          []entity.OrderItem
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// PricingService converts requested line items plus discounts into a
// fully priced order. It is a pure computation over catalog reads and
// has no side effects.
type PricingService struct {
	productRepo repository.ProductRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(productRepo repository.ProductRepository) *PricingService {
	return &PricingService{productRepo: productRepo}
}

// Price computes per-item and order-level amounts.
//
// Per item: discount = unit_price*quantity*discount_percent/100,
// taxable = unit_price*quantity - discount, tax = taxable*tax_rate/100.
// The order-level discount applies to the taxable subtotal only; item tax
// is added back undiscounted. That asymmetry is part of the contract.
func (s *PricingService) Price(ctx context.Context, items []LineItemInput, orderDiscountPercent decimal.Decimal) (*PricedOrder, error) {
	if err := validatePercent(orderDiscountPercent); err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		if !item.Quantity.IsPositive() {
			return nil, apperror.NewInvalidLineItemError("quantity must be greater than zero")
		}
		if err := validatePercent(item.DiscountPercent); err != nil {
			return nil, err
		}
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	priced := &PricedOrder{
		Items:     make([]entity.OrderItem, 0, len(items)),
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
	}

	subtotalRaw := decimal.Zero
	for _, item := range items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewProductNotFoundError(item.ProductID.String())
		}

		unitPrice := product.SellingPrice
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		}
		quantity := item.Quantity.Round(3)

		gross := unitPrice.Mul(quantity)
		discount := gross.Mul(item.DiscountPercent).Div(oneHundred).Round(2)
		taxable := gross.Sub(discount)
		tax := taxable.Mul(product.TaxRate).Div(oneHundred).Round(2)
		total := taxable.Add(tax).Round(2)

		priced.Items = append(priced.Items, entity.OrderItem{
			ProductID:       product.ID,
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			DiscountPercent: item.DiscountPercent,
			DiscountAmount:  discount,
			TaxRate:         product.TaxRate,
			TaxAmount:       tax,
			TotalAmount:     total,
		})
		subtotalRaw = subtotalRaw.Add(taxable)
		priced.TaxAmount = priced.TaxAmount.Add(tax)
	}

	priced.Subtotal = subtotalRaw.Round(2)
	priced.DiscountAmount = priced.Subtotal.Mul(orderDiscountPercent).Div(oneHundred).Round(2)
	priced.TotalAmount = priced.Subtotal.Sub(priced.DiscountAmount).Add(priced.TaxAmount)

	return priced, nil
}

func validatePercent(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(oneHundred) {
		return apperror.NewInvalidLineItemError("discount percent must be between 0 and 100")
	}
	return nil
}
