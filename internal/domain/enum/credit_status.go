package enum

// CreditStatus represents the state of a customer's revolving credit
type CreditStatus string

const (
	CreditStatusActive    CreditStatus = "active"
	CreditStatusOverdue   CreditStatus = "overdue"
	CreditStatusPaid      CreditStatus = "paid"
	CreditStatusSuspended CreditStatus = "suspended"
)

func (s CreditStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known credit status
func (s CreditStatus) IsValid() bool {
	switch s {
	case CreditStatusActive, CreditStatusOverdue, CreditStatusPaid, CreditStatusSuspended:
		return true
	}
	return false
}

// CreditTransactionType distinguishes ledger entries
type CreditTransactionType string

const (
	CreditTransactionCharge  CreditTransactionType = "charge"
	CreditTransactionPayment CreditTransactionType = "payment"
)

func (t CreditTransactionType) String() string {
	return string(t)
}
