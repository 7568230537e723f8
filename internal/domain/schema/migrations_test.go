package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/migration"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
)

func TestConfigChainIsContiguous(t *testing.T) {
	assert.NoError(t, Config(nil).VerifyChain())
}

func TestLegacyDocumentMigratesToCurrent(t *testing.T) {
	store := storage.NewMemoryStore(nil)
	mgr := migration.NewManager(store, Config(nil), nil)

	// A document written before versioning: raw state at the top level.
	store.SetRaw(storage.KeyWorkingSale, json.RawMessage(`{
		"cartItems": [
			{"productId": "prod-001", "name": "Camiseta", "quantity": 2, "unitPrice": 49.90},
			{"name": "sem id", "quantity": 1}
		],
		"selectedCustomer": {"id": "c1", "name": "Ana Silva", "phone": "11999990001"},
		"discount": {"type": "percentage", "value": 10}
	}`))

	doc := mgr.Load(storage.KeyWorkingSale)

	assert.Equal(t, CurrentVersion, doc.Version)
	require.Len(t, doc.Data.CartItems, 1, "the line without a product id is dropped")
	assert.Equal(t, "prod-001", doc.Data.CartItems[0].ProductID)
	require.NotNil(t, doc.Data.SelectedCustomer)
	assert.Equal(t, "Ana Silva", doc.Data.SelectedCustomer.Name)
	assert.Equal(t, enum.DiscountTypePercentage, doc.Data.Discount.Type)
	require.NotNil(t, doc.Data.Metadata)
	assert.Zero(t, doc.Data.Metadata.TotalSales)
}

func TestCorruptDocumentResetsToDefaults(t *testing.T) {
	store := storage.NewMemoryStore(nil)

	var reported error
	mgr := migration.NewManager(store, Config(func(err error) { reported = err }), nil)

	store.SetRaw(storage.KeyWorkingSale, json.RawMessage(`{"cartItems": [truncated`))

	doc := mgr.Load(storage.KeyWorkingSale)

	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Empty(t, doc.Data.CartItems)
	assert.Nil(t, doc.Data.SelectedCustomer)
	require.Error(t, reported)
}

func TestNonObjectLegacyDocumentStillYieldsDefaults(t *testing.T) {
	store := storage.NewMemoryStore(nil)
	mgr := migration.NewManager(store, Config(nil), nil)

	store.SetRaw(storage.KeyWorkingSale, json.RawMessage(`"just a string"`))

	doc := mgr.Load(storage.KeyWorkingSale)

	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Empty(t, doc.Data.CartItems)
	assert.Nil(t, doc.Data.SelectedCustomer)
	assert.Equal(t, enum.DiscountTypeNone, doc.Data.Discount.Type)
}

func TestMigrateV1toV2AddsSettingsAndHistory(t *testing.T) {
	customer := entity.Customer{ID: "c1", Name: "Ana Silva", Phone: "119"}
	v1 := State{
		CartItems:        []entity.CartItem{},
		SelectedCustomer: &customer,
		Discount:         entity.NoDiscount(),
	}

	out, err := migrateV1toV2(v1)
	require.NoError(t, err)

	v2, ok := out.(StateV2)
	require.True(t, ok)
	assert.True(t, v2.Settings.AutoSave)
	assert.Equal(t, "system", v2.Settings.Theme)
	assert.Equal(t, "pt-BR", v2.Settings.Language)
	require.Len(t, v2.RecentCustomers, 1)
	assert.Equal(t, "c1", v2.RecentCustomers[0].ID)
	assert.Equal(t, []string{"F2", "F3", "F4", "F5"}, v2.QuickActions)
}

func TestMigrateV1toV2WithoutCustomer(t *testing.T) {
	out, err := migrateV1toV2(State{CartItems: []entity.CartItem{}})
	require.NoError(t, err)

	v2 := out.(StateV2)
	assert.Empty(t, v2.RecentCustomers)
}
