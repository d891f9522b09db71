package service

import (
	"context"
	"testing"

	"github.com/flukesan/POS-System/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingFixture() (*PricingService, *fakeStore) {
	store := newFakeStore()
	return NewPricingService(&fakeProductRepository{store: store}), store
}

func seedProduct(store *fakeStore, price string, taxRate string) uuid.UUID {
	product := &entity.Product{
		Code:         "P-" + uuid.New().String()[:8],
		Name:         "Test Product",
		SellingPrice: decimal.RequireFromString(price),
		TaxRate:      decimal.RequireFromString(taxRate),
		IsActive:     true,
	}
	store.addProduct(product)
	return product.ID
}

func TestPrice_SingleItemWithTax(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "100.00", "7")

	priced, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.NewFromInt(2)},
	}, decimal.Zero)

	require.NoError(t, err)
	require.Len(t, priced.Items, 1)
	assert.Equal(t, "200.00", priced.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", priced.DiscountAmount.StringFixed(2))
	assert.Equal(t, "14.00", priced.TaxAmount.StringFixed(2))
	assert.Equal(t, "214.00", priced.TotalAmount.StringFixed(2))

	item := priced.Items[0]
	assert.Equal(t, "100.00", item.UnitPrice.StringFixed(2))
	assert.Equal(t, "14.00", item.TaxAmount.StringFixed(2))
	assert.Equal(t, "214.00", item.TotalAmount.StringFixed(2))
}

func TestPrice_ItemDiscountAppliedBeforeTax(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "100.00", "7")

	priced, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.NewFromInt(1), DiscountPercent: decimal.NewFromInt(10)},
	}, decimal.Zero)

	require.NoError(t, err)
	item := priced.Items[0]
	assert.Equal(t, "10.00", item.DiscountAmount.StringFixed(2))
	assert.Equal(t, "6.30", item.TaxAmount.StringFixed(2))
	assert.Equal(t, "96.30", item.TotalAmount.StringFixed(2))
	assert.Equal(t, "90.00", priced.Subtotal.StringFixed(2))
	assert.Equal(t, "96.30", priced.TotalAmount.StringFixed(2))
}

func TestPrice_OrderDiscountExcludesTax(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "100.00", "7")

	priced, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.NewFromInt(2)},
	}, decimal.NewFromInt(10))

	require.NoError(t, err)
	// order discount cuts the taxable subtotal; item tax is added back in full
	assert.Equal(t, "200.00", priced.Subtotal.StringFixed(2))
	assert.Equal(t, "20.00", priced.DiscountAmount.StringFixed(2))
	assert.Equal(t, "14.00", priced.TaxAmount.StringFixed(2))
	assert.Equal(t, "194.00", priced.TotalAmount.StringFixed(2))
}

func TestPrice_RoundsHalfUpAtEachStep(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "19.99", "7")

	priced, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.NewFromInt(3), DiscountPercent: decimal.RequireFromString("7.5")},
	}, decimal.Zero)

	require.NoError(t, err)
	item := priced.Items[0]
	// gross 59.97, discount 4.49775 -> 4.50, taxable 55.47, tax 3.8829 -> 3.88
	assert.Equal(t, "4.50", item.DiscountAmount.StringFixed(2))
	assert.Equal(t, "3.88", item.TaxAmount.StringFixed(2))
	assert.Equal(t, "59.35", item.TotalAmount.StringFixed(2))
}

func TestPrice_UnitPriceOverride(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "100.00", "0")

	override := decimal.RequireFromString("85.00")
	priced, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.NewFromInt(1), UnitPrice: &override},
	}, decimal.Zero)

	require.NoError(t, err)
	assert.Equal(t, "85.00", priced.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "85.00", priced.TotalAmount.StringFixed(2))
}

func TestPrice_FractionalQuantityKeepsThreeDecimals(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "40.00", "0")

	priced, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.RequireFromString("1.2345")},
	}, decimal.Zero)

	require.NoError(t, err)
	assert.Equal(t, "1.235", priced.Items[0].Quantity.StringFixed(3))
	assert.Equal(t, "49.40", priced.TotalAmount.StringFixed(2))
}

func TestPrice_RejectsNonPositiveQuantity(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "100.00", "7")

	_, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.Zero},
	}, decimal.Zero)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity must be greater than zero")
}

func TestPrice_RejectsDiscountOutOfRange(t *testing.T) {
	svc, store := newPricingFixture()
	productID := seedProduct(store, "100.00", "7")

	_, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.NewFromInt(1), DiscountPercent: decimal.NewFromInt(101)},
	}, decimal.Zero)
	require.Error(t, err)

	_, err = svc.Price(context.Background(), []LineItemInput{
		{ProductID: productID, Quantity: decimal.NewFromInt(1)},
	}, decimal.NewFromInt(-1))
	require.Error(t, err)
}

func TestPrice_UnknownProduct(t *testing.T) {
	svc, _ := newPricingFixture()

	_, err := svc.Price(context.Background(), []LineItemInput{
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)},
	}, decimal.Zero)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
