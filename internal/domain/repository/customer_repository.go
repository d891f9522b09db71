package repository

import (
	"context"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations.
// Customer master data is owned elsewhere; this engine reads customers and
// writes only their credit fields.
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// GetForUpdate reads the customer with a row lock. Only valid inside a
	// unit of work; it serializes credit mutations per customer.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// UpdateCredit persists the credit balance and credit status fields
	UpdateCredit(ctx context.Context, customer *entity.Customer) error
}
