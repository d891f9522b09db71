package repository

import (
	"context"

	"github.com/flukesan/POS-System/internal/domain/entity"
	domainRepo "github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type creditRepository struct {
	db *gorm.DB
}

// NewCreditRepository creates a new credit ledger repository
func NewCreditRepository(db *gorm.DB) domainRepo.CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) Create(ctx context.Context, tx *entity.CreditTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *creditRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CreditTransaction, int64, error) {
	var entries []entity.CreditTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CreditTransaction{}).
		Where("customer_id = ?", customerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&entries).Error

	return entries, total, err
}
