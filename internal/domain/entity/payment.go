package entity

import (
	"time"

	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentTransaction represents a single payment attempt against an order.
// Once confirmed the record is immutable except for the write-once
// bank reference and payer name stamped at confirmation.
type PaymentTransaction struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	TransactionRef string             `gorm:"size:100;unique;not null" json:"transaction_ref"`
	PaymentMethod  enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	Amount         decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status         enum.PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	QRCodeData     string             `gorm:"type:text" json:"qr_code_data,omitempty"`
	BankReference  *string            `gorm:"size:100" json:"bank_reference,omitempty"`
	PayerName      *string            `gorm:"size:100" json:"payer_name,omitempty"`
	ConfirmedAt    *time.Time         `json:"confirmed_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new payment transaction
func (t *PaymentTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentTransaction model
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
