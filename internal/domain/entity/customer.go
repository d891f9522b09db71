package entity

import (
	"time"

	"github.com/flukesan/POS-System/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer represents a POS customer. Customer master data is maintained
// elsewhere; this engine only mutates the credit fields, and only through
// the credit ledger.
type Customer struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Code          string            `gorm:"size:20;unique;not null" json:"code"`
	Name          string            `gorm:"size:150;not null" json:"name"`
	Phone         *string           `gorm:"size:20" json:"phone,omitempty"`
	Email         *string           `gorm:"size:100" json:"email,omitempty"`
	CreditLimit   decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0" json:"credit_limit"`
	CreditBalance decimal.Decimal   `gorm:"type:decimal(12,2);not null;default:0" json:"credit_balance"`
	CreditDays    int               `gorm:"not null;default:30" json:"credit_days"`
	CreditStatus  enum.CreditStatus `gorm:"size:20;not null;default:'active'" json:"credit_status"`
	IsActive      bool              `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	// Relationships
	Orders             []Order             `gorm:"foreignKey:CustomerID" json:"-"`
	CreditTransactions []CreditTransaction `gorm:"foreignKey:CustomerID" json:"-"`
}

// AvailableCredit returns the remaining headroom for credit charges
func (c *Customer) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.CreditBalance)
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
