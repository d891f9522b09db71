package repository

import (
	"context"

	domainRepo "github.com/flukesan/POS-System/internal/domain/repository"
	"gorm.io/gorm"
)

type repositories struct {
	orders    domainRepo.OrderRepository
	payments  domainRepo.PaymentRepository
	credits   domainRepo.CreditRepository
	customers domainRepo.CustomerRepository
}

func (r *repositories) Orders() domainRepo.OrderRepository       { return r.orders }
func (r *repositories) Payments() domainRepo.PaymentRepository   { return r.payments }
func (r *repositories) Credits() domainRepo.CreditRepository     { return r.credits }
func (r *repositories) Customers() domainRepo.CustomerRepository { return r.customers }

func newRepositories(db *gorm.DB) domainRepo.Repositories {
	return &repositories{
		orders:    NewOrderRepository(db),
		payments:  NewPaymentRepository(db),
		credits:   NewCreditRepository(db),
		customers: NewCustomerRepository(db),
	}
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a gorm-backed unit of work. Each Do call opens a
// database transaction and hands the callback repositories bound to it;
// an error from the callback rolls every write back.
func NewUnitOfWork(db *gorm.DB) domainRepo.UnitOfWork {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(r domainRepo.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}
