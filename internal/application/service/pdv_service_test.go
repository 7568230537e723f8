package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/schema"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/backup"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/catalog"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/migration"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/apperror"
)

var testProducts = []entity.Product{
	{ID: "p1", Code: "P1", Name: "Camiseta Básica", Price: 49.90, Image: "/p1.jpg", Stock: 10},
	{ID: "p2", Code: "P2", Name: "Calça Jeans", Price: 120.00, Image: "/p2.jpg", Stock: 5,
		Variants: &entity.ProductVariants{Size: []string{"M", "G"}, Color: []string{"Azul"}}},
}

var testCustomers = []entity.Customer{
	{ID: "c1", Name: "Ana Silva", Phone: "11999990001", Avatar: "/a.jpg", Type: enum.CustomerTypeIndividual},
}

func newTestPDV(t *testing.T) (*PDVService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore(nil)
	documents := migration.NewManager(store, schema.Config(nil), nil)
	backups := backup.NewManager(store, nil)
	pdv := NewPDVService(store, documents, backups,
		catalog.NewProductCatalogWith(testProducts),
		catalog.NewCustomerCatalogWith(testCustomers), nil)
	pdv.Hydrate()
	return pdv, store
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	pdv, _ := newTestPDV(t)
	ctx := context.Background()

	item, err := pdv.AddItem(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 49.90, item.Subtotal)

	item, err = pdv.AddItem(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 99.80, item.Subtotal)

	// Still one line in the cart.
	assert.Len(t, pdv.Snapshot().CartItems, 1)
}

func TestAddItemSeedsFirstVariant(t *testing.T) {
	pdv, _ := newTestPDV(t)

	item, err := pdv.AddItem(context.Background(), "p2")
	require.NoError(t, err)
	require.NotNil(t, item.Variant)
	assert.Equal(t, "M", item.Variant.Size)
	assert.Equal(t, "Azul", item.Variant.Color)
}

func TestAddItemUnknownProduct(t *testing.T) {
	pdv, _ := newTestPDV(t)

	_, err := pdv.AddItem(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	pdv, _ := newTestPDV(t)
	ctx := context.Background()

	_, err := pdv.AddItem(ctx, "p1")
	require.NoError(t, err)

	require.NoError(t, pdv.UpdateQuantity("p1", 3))
	assert.Equal(t, 3, pdv.Snapshot().CartItems[0].Quantity)
	assert.Equal(t, 3*49.90, pdv.Snapshot().CartItems[0].Subtotal)

	require.NoError(t, pdv.UpdateQuantity("p1", 0))
	assert.Empty(t, pdv.Snapshot().CartItems)

	// The line is gone now.
	err = pdv.UpdateQuantity("p1", 1)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	pdv, _ := newTestPDV(t)

	_, err := pdv.AddItem(context.Background(), "p1")
	require.NoError(t, err)

	pdv.RemoveItem("p1")
	pdv.RemoveItem("p1")
	assert.Empty(t, pdv.Snapshot().CartItems)
}

func TestClearCartResetsSaleAtomically(t *testing.T) {
	pdv, _ := newTestPDV(t)
	ctx := context.Background()

	_, err := pdv.AddItem(ctx, "p1")
	require.NoError(t, err)
	require.NoError(t, pdv.SetCustomer(ctx, "c1"))
	require.NoError(t, pdv.SetDiscount(enum.DiscountTypePercentage, 10))

	pdv.ClearCart()

	view := pdv.Snapshot()
	assert.Empty(t, view.CartItems)
	assert.Nil(t, view.SelectedCustomer)
	assert.Equal(t, enum.DiscountTypeNone, view.Discount.Type)
}

func TestSetDiscountValidatesTypeAndSign(t *testing.T) {
	pdv, _ := newTestPDV(t)

	assert.Error(t, pdv.SetDiscount("bogus", 10))
	assert.Error(t, pdv.SetDiscount(enum.DiscountTypeFixed, -1))
	assert.NoError(t, pdv.SetDiscount(enum.DiscountTypeFixed, 5))
}

func TestFixedDiscountSubtractsFromSubtotal(t *testing.T) {
	pdv, _ := newTestPDV(t)
	ctx := context.Background()

	_, err := pdv.AddItem(ctx, "p2")
	require.NoError(t, err)
	require.NoError(t, pdv.SetDiscount(enum.DiscountTypeFixed, 20))

	view := pdv.Snapshot()
	assert.InDelta(t, 120.00, view.Subtotal, 1e-9)
	assert.InDelta(t, 20.0, view.DiscountAmount, 1e-9)
	assert.InDelta(t, 100.00, view.Total, 1e-9)
	assert.Zero(t, view.Shipping)
}

func TestFinalizeSaleGuards(t *testing.T) {
	pdv, _ := newTestPDV(t)
	ctx := context.Background()

	assert.ErrorIs(t, pdv.FinalizeSale(), apperror.ErrEmptyCart)

	_, err := pdv.AddItem(ctx, "p1")
	require.NoError(t, err)
	assert.ErrorIs(t, pdv.FinalizeSale(), apperror.ErrNoCustomer)

	// State is untouched by the refused attempts.
	view := pdv.Snapshot()
	assert.Len(t, view.CartItems, 1)
}

func TestFinalizeSaleResetsAndRecords(t *testing.T) {
	pdv, store := newTestPDV(t)
	ctx := context.Background()

	_, err := pdv.AddItem(ctx, "p1")
	require.NoError(t, err)
	require.NoError(t, pdv.SetCustomer(ctx, "c1"))
	require.NoError(t, pdv.OpenModal("discount"))

	require.NoError(t, pdv.FinalizeSale())

	view := pdv.Snapshot()
	assert.Empty(t, view.CartItems)
	assert.Nil(t, view.SelectedCustomer)
	assert.False(t, view.Modals.Discount)

	// The last-sale summary and the automatic cart backup were written.
	assert.True(t, store.Has(storage.KeyLastSale))
	assert.NotEmpty(t, backup.NewManager(store, nil).List("pdv_cart"))

	// The sale counter survives persistence.
	state := migration.NewManager(store, schema.Config(nil), nil).Load(storage.KeyWorkingSale)
	require.NotNil(t, state.Data.Metadata)
	assert.Equal(t, 1, state.Data.Metadata.TotalSales)
}

func TestHydrateRestoresPersistedSale(t *testing.T) {
	pdv, store := newTestPDV(t)
	ctx := context.Background()

	_, err := pdv.AddItem(ctx, "p1")
	require.NoError(t, err)
	require.NoError(t, pdv.SetCustomer(ctx, "c1"))
	require.NoError(t, pdv.SetDiscount(enum.DiscountTypePercentage, 10))

	// A second container over the same store sees the same sale.
	documents := migration.NewManager(store, schema.Config(nil), nil)
	reloaded := NewPDVService(store, documents, backup.NewManager(store, nil),
		catalog.NewProductCatalogWith(testProducts),
		catalog.NewCustomerCatalogWith(testCustomers), nil)
	reloaded.Hydrate()

	view := reloaded.Snapshot()
	require.Len(t, view.CartItems, 1)
	assert.Equal(t, "p1", view.CartItems[0].ProductID)
	require.NotNil(t, view.SelectedCustomer)
	assert.Equal(t, "c1", view.SelectedCustomer.ID)
	assert.Equal(t, 10.0, view.Discount.Value)
	assert.True(t, view.IsInitialized)
}

func TestMutationsBeforeHydrateDoNotPersist(t *testing.T) {
	store := storage.NewMemoryStore(nil)
	store.Set("sentinel", true)

	documents := migration.NewManager(store, schema.Config(nil), nil)
	pdv := NewPDVService(store, documents, backup.NewManager(store, nil),
		catalog.NewProductCatalogWith(testProducts),
		catalog.NewCustomerCatalogWith(testCustomers), nil)

	// Not hydrated yet: the mutation applies in memory but must not
	// write the working-sale document.
	_, err := pdv.AddItem(context.Background(), "p1")
	require.NoError(t, err)
	assert.False(t, store.Has(storage.KeyWorkingSale))
}

func TestModalFlags(t *testing.T) {
	pdv, _ := newTestPDV(t)

	require.NoError(t, pdv.OpenModal("budgets"))
	require.NoError(t, pdv.OpenModal("searchProduct"))
	assert.Error(t, pdv.OpenModal("unknownModal"))

	view := pdv.Snapshot()
	assert.True(t, view.Modals.Budgets)
	assert.True(t, view.Modals.SearchProduct)

	require.NoError(t, pdv.CloseModal("budgets"))
	assert.False(t, pdv.Snapshot().Modals.Budgets)

	pdv.CloseAllModals()
	assert.Equal(t, ModalsState{}, pdv.Snapshot().Modals)
}

func TestSidebarAndMobileFlags(t *testing.T) {
	pdv, _ := newTestPDV(t)

	pdv.SetSidebarOpen(true)
	assert.True(t, pdv.Snapshot().IsSidebarOpen)

	pdv.ToggleSidebar()
	assert.False(t, pdv.Snapshot().IsSidebarOpen)

	pdv.SetMobile(true)
	assert.True(t, pdv.Snapshot().IsMobile)
}

// Walks a whole sale the way a cashier would and checks the derived
// totals at each step.
func TestWorkingSaleScenario(t *testing.T) {
	pdv, _ := newTestPDV(t)
	ctx := context.Background()

	_, err := pdv.AddItem(ctx, "p1")
	require.NoError(t, err)

	require.NoError(t, pdv.UpdateQuantity("p1", 2))
	assert.InDelta(t, 99.80, pdv.Subtotal(), 1e-9)

	require.NoError(t, pdv.SetDiscount(enum.DiscountTypePercentage, 10))
	assert.InDelta(t, 9.98, pdv.DiscountAmount(), 1e-9)
	assert.InDelta(t, 89.82, pdv.Total(), 1e-9)

	pdv.RemoveItem("p1")
	assert.Zero(t, pdv.Subtotal())
	assert.Zero(t, pdv.DiscountAmount())
	assert.Zero(t, pdv.Total())
}
