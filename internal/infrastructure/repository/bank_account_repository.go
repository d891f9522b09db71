package repository

import (
	"context"
	"errors"

	"github.com/flukesan/POS-System/internal/domain/entity"
	domainRepo "github.com/flukesan/POS-System/internal/domain/repository"
	"gorm.io/gorm"
)

type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *gorm.DB) domainRepo.BankAccountRepository {
	return &bankAccountRepository{db: db}
}

func (r *bankAccountRepository) GetDefault(ctx context.Context) (*entity.BankAccount, error) {
	var account entity.BankAccount
	err := r.db.WithContext(ctx).
		Where("is_default = ? AND is_active = ?", true, true).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *bankAccountRepository) ListActive(ctx context.Context) ([]entity.BankAccount, error) {
	var accounts []entity.BankAccount
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("is_default DESC, bank_name ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *bankAccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}
