package repository

import (
	"context"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/google/uuid"
)

// ProductRepository defines the read interface the pricing engine needs.
// Catalog maintenance lives outside this engine.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
}
