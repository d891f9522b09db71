package repository

import (
	"context"

	"github.com/flukesan/POS-System/internal/domain/entity"
)

// BankAccountRepository defines the interface for receiving payment accounts
type BankAccountRepository interface {
	GetDefault(ctx context.Context) (*entity.BankAccount, error)
	ListActive(ctx context.Context) ([]entity.BankAccount, error)
	Create(ctx context.Context, account *entity.BankAccount) error
}
