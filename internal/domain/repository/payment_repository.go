package repository

import (
	"context"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment transaction data operations
type PaymentRepository interface {
	Create(ctx context.Context, tx *entity.PaymentTransaction) error
	GetByRef(ctx context.Context, transactionRef string) (*entity.PaymentTransaction, error)
	// GetByRefForUpdate reads the transaction with a row lock. Only valid
	// inside a unit of work; it makes duplicate confirmations lose the race.
	GetByRefForUpdate(ctx context.Context, transactionRef string) (*entity.PaymentTransaction, error)
	Update(ctx context.Context, tx *entity.PaymentTransaction) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.PaymentTransaction, error)
}
