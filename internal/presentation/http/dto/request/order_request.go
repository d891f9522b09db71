package request

import "github.com/shopspring/decimal"

// OrderItemRequest represents a requested order line
type OrderItemRequest struct {
	ProductID       string           `json:"product_id" binding:"required,uuid"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID      *string            `json:"customer_id" binding:"omitempty,uuid"`
	Items           []OrderItemRequest `json:"items" binding:"required,min=1"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	Notes           string             `json:"notes"`
	IsCreditSale    bool               `json:"is_credit_sale"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
