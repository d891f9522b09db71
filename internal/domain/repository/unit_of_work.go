package repository

import "context"

// Repositories bundles the transaction-scoped repositories handed to a
// unit of work callback. Every repository in the bundle runs against the
// same database transaction.
type Repositories interface {
	Orders() OrderRepository
	Payments() PaymentRepository
	Credits() CreditRepository
	Customers() CustomerRepository
}

// UnitOfWork is the explicit transactional boundary for every
// payment-affecting operation. All writes performed inside fn commit
// together or not at all; returning an error rolls everything back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
}
