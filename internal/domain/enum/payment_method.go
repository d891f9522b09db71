package enum

// PaymentMethod represents how an order is settled
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodQRPromptPay  PaymentMethod = "qr_promptpay"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCredit       PaymentMethod = "credit"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is a known payment method
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodQRPromptPay, PaymentMethodBankTransfer, PaymentMethodCredit:
		return true
	}
	return false
}
