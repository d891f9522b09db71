package entity

import (
	"time"

	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a sales order
type Order struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber     string             `gorm:"size:30;unique;not null" json:"order_number"`
	CustomerID      *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	OrderDate       time.Time          `gorm:"not null" json:"order_date"`
	Status          enum.OrderStatus   `gorm:"size:20;not null;default:'pending'" json:"status"`
	Subtotal        decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	DiscountPercent decimal.Decimal    `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	DiscountAmount  decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	TaxAmount       decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	TotalAmount     decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"total_amount"`
	PaidAmount      decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"paid_amount"`
	ChangeAmount    decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0" json:"change_amount"`
	PaymentMethod   enum.PaymentMethod `gorm:"size:20" json:"payment_method,omitempty"`
	PaymentStatus   enum.PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	QRReference     string             `gorm:"size:100" json:"qr_reference,omitempty"`
	IsCreditSale    bool               `gorm:"not null;default:false" json:"is_credit_sale"`
	CreditDueDate   *time.Time         `gorm:"type:date" json:"credit_due_date,omitempty"`
	Notes           string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	// Relationships
	Customer *Customer            `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []PaymentTransaction `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "sales_orders"
}

// OrderItem represents a line item in a sales order
type OrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity        decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "sales_order_items"
}
