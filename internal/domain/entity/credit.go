package entity

import (
	"time"

	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditTransaction is an append-only audit entry against a customer's
// revolving credit balance. It is never updated after creation.
type CreditTransaction struct {
	ID            uuid.UUID                  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID                  `gorm:"type:uuid;not null;index" json:"customer_id"`
	OrderID       *uuid.UUID                 `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Type          enum.CreditTransactionType `gorm:"size:20;not null;column:transaction_type" json:"transaction_type"`
	Amount        decimal.Decimal            `gorm:"type:decimal(12,2);not null" json:"amount"`
	BalanceBefore decimal.Decimal            `gorm:"type:decimal(12,2);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal            `gorm:"type:decimal(12,2);not null" json:"balance_after"`
	DueDate       *time.Time                 `gorm:"type:date" json:"due_date,omitempty"`
	PaidDate      *time.Time                 `gorm:"type:date" json:"paid_date,omitempty"`
	Notes         string                     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new credit transaction
func (t *CreditTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CreditTransaction model
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
