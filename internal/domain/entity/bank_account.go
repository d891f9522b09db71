package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankAccount is a receiving account for QR transfer payments
type BankAccount struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BankName      string    `gorm:"size:100;not null" json:"bank_name"`
	AccountName   string    `gorm:"size:150;not null" json:"account_name"`
	AccountNumber string    `gorm:"size:30;not null" json:"account_number"`
	PromptPayID   string    `gorm:"size:20" json:"promptpay_id,omitempty"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	IsDefault     bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new bank account
func (a *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BankAccount model
func (BankAccount) TableName() string {
	return "bank_accounts"
}
