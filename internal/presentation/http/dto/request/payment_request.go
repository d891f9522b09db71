package request

import "github.com/shopspring/decimal"

// InitiatePaymentRequest represents a payment initiation request
type InitiatePaymentRequest struct {
	OrderID       string           `json:"order_id" binding:"required,uuid"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
	PaidAmount    *decimal.Decimal `json:"paid_amount"`
}

// ConfirmPaymentRequest represents a transfer confirmation request
type ConfirmPaymentRequest struct {
	TransactionRef string  `json:"transaction_ref" binding:"required"`
	BankReference  *string `json:"bank_reference"`
	PayerName      *string `json:"payer_name"`
}

// RecordCreditPaymentRequest represents a credit repayment request
type RecordCreditPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}
