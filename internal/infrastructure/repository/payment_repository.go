package repository

import (
	"context"
	"errors"

	"github.com/flukesan/POS-System/internal/domain/entity"
	domainRepo "github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment transaction repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, tx *entity.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *paymentRepository) GetByRef(ctx context.Context, transactionRef string) (*entity.PaymentTransaction, error) {
	var tx entity.PaymentTransaction
	err := r.db.WithContext(ctx).First(&tx, "transaction_ref = ?", transactionRef).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *paymentRepository) GetByRefForUpdate(ctx context.Context, transactionRef string) (*entity.PaymentTransaction, error) {
	var tx entity.PaymentTransaction
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tx, "transaction_ref = ?", transactionRef).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *paymentRepository) Update(ctx context.Context, tx *entity.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.PaymentTransaction, error) {
	var txs []entity.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&txs).Error
	return txs, err
}
