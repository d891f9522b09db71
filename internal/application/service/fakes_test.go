package service

import (
	"context"
	"fmt"
	"time"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/flukesan/POS-System/internal/domain/repository"
	"github.com/flukesan/POS-System/pkg/pagination"
	"github.com/google/uuid"
)

// fakeStore is the shared in-memory backing for the repository fakes.
// Reads return copies and writes go through Update, so the fakes catch
// services that mutate a loaded row without persisting it.
type fakeStore struct {
	orders    map[uuid.UUID]*entity.Order
	payments  map[string]*entity.PaymentTransaction
	credits   []entity.CreditTransaction
	customers map[uuid.UUID]*entity.Customer
	products  map[uuid.UUID]*entity.Product
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:    make(map[uuid.UUID]*entity.Order),
		payments:  make(map[string]*entity.PaymentTransaction),
		customers: make(map[uuid.UUID]*entity.Customer),
		products:  make(map[uuid.UUID]*entity.Product),
	}
}

func (s *fakeStore) addOrder(order *entity.Order) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	s.orders[order.ID] = &cp
}

func (s *fakeStore) addCustomer(customer *entity.Customer) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	cp := *customer
	s.customers[customer.ID] = &cp
}

func (s *fakeStore) addProduct(product *entity.Product) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	cp := *product
	s.products[product.ID] = &cp
}

// fakeUnitOfWork runs the callback directly against the shared store.
// It does not roll back; tests assert on errors before side effects.
type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(r repository.Repositories) error) error {
	return fn(&fakeRepositories{store: u.store})
}

type fakeRepositories struct {
	store *fakeStore
}

func (r *fakeRepositories) Orders() repository.OrderRepository {
	return &fakeOrderRepository{store: r.store}
}

func (r *fakeRepositories) Payments() repository.PaymentRepository {
	return &fakePaymentRepository{store: r.store}
}

func (r *fakeRepositories) Credits() repository.CreditRepository {
	return &fakeCreditRepository{store: r.store}
}

func (r *fakeRepositories) Customers() repository.CustomerRepository {
	return &fakeCustomerRepository{store: r.store}
}

type fakeOrderRepository struct {
	store *fakeStore
}

func (f *fakeOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	f.store.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, exists := f.store.orders[id]
	if !exists {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (f *fakeOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	for _, order := range f.store.orders {
		if order.OrderNumber == orderNumber {
			cp := *order
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	cp := *order
	f.store.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepository) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	orders := make([]entity.Order, 0, len(f.store.orders))
	for _, order := range f.store.orders {
		if params.Status != nil && order.Status != *params.Status {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, int64(len(orders)), nil
}

type fakePaymentRepository struct {
	store *fakeStore
}

func (f *fakePaymentRepository) Create(ctx context.Context, tx *entity.PaymentTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	cp := *tx
	f.store.payments[tx.TransactionRef] = &cp
	return nil
}

func (f *fakePaymentRepository) GetByRef(ctx context.Context, transactionRef string) (*entity.PaymentTransaction, error) {
	tx, exists := f.store.payments[transactionRef]
	if !exists {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (f *fakePaymentRepository) GetByRefForUpdate(ctx context.Context, transactionRef string) (*entity.PaymentTransaction, error) {
	return f.GetByRef(ctx, transactionRef)
}

func (f *fakePaymentRepository) Update(ctx context.Context, tx *entity.PaymentTransaction) error {
	cp := *tx
	f.store.payments[tx.TransactionRef] = &cp
	return nil
}

func (f *fakePaymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.PaymentTransaction, error) {
	var txs []entity.PaymentTransaction
	for _, tx := range f.store.payments {
		if tx.OrderID == orderID {
			txs = append(txs, *tx)
		}
	}
	return txs, nil
}

type fakeCreditRepository struct {
	store *fakeStore
}

func (f *fakeCreditRepository) Create(ctx context.Context, tx *entity.CreditTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	f.store.credits = append(f.store.credits, *tx)
	return nil
}

func (f *fakeCreditRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, params *pagination.PaginationParams) ([]entity.CreditTransaction, int64, error) {
	var entries []entity.CreditTransaction
	for _, tx := range f.store.credits {
		if tx.CustomerID == customerID {
			entries = append(entries, tx)
		}
	}
	return entries, int64(len(entries)), nil
}

type fakeCustomerRepository struct {
	store *fakeStore
}

func (f *fakeCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, exists := f.store.customers[id]
	if !exists {
		return nil, nil
	}
	cp := *customer
	return &cp, nil
}

func (f *fakeCustomerRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeCustomerRepository) UpdateCredit(ctx context.Context, customer *entity.Customer) error {
	stored, exists := f.store.customers[customer.ID]
	if !exists {
		return nil
	}
	stored.CreditBalance = customer.CreditBalance
	stored.CreditStatus = customer.CreditStatus
	return nil
}

type fakeProductRepository struct {
	store *fakeStore
}

func (f *fakeProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, exists := f.store.products[id]
	if !exists {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (f *fakeProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, exists := f.store.products[id]; exists {
			products = append(products, *product)
		}
	}
	return products, nil
}

// fakeRefGenerator hands out deterministic sequential references
type fakeRefGenerator struct {
	seq int
}

func (g *fakeRefGenerator) OrderNumber(t time.Time) string {
	g.seq++
	return fmt.Sprintf("SO%s%04X", t.UTC().Format("20060102"), g.seq)
}

func (g *fakeRefGenerator) TransactionRef() string {
	g.seq++
	return fmt.Sprintf("TX%012X", g.seq)
}
