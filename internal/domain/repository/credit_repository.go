package repository

import (
	"context"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/google/uuid"
)

// CreditRepository defines the interface for credit ledger entries.
// Entries are append-only; there is no update or delete.
type CreditRepository interface {
	Create(ctx context.Context, tx *entity.CreditTransaction) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CreditTransaction, int64, error)
}
