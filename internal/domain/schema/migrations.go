package schema

import (
	"time"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/migration"
)

// Migrations returns the upgrade chain for the working-sale document.
func Migrations() []migration.Migration {
	return []migration.Migration{
		{
			FromVersion: 0,
			ToVersion:   1,
			Description: "legacy unversioned data to versioned structure",
			Migrate:     migrateV0toV1,
		},
		{
			FromVersion: 1,
			ToVersion:   2,
			Description: "add settings block and recent customer history",
			Migrate:     migrateV1toV2,
		},
	}
}

// migrateV0toV1 accepts the loosely typed legacy shape, where every field
// may be missing or malformed, and produces a fully populated version 1
// payload.
func migrateV0toV1(data any) (any, error) {
	m, _ := data.(map[string]any)

	items := []entity.CartItem{}
	if rawItems, ok := m["cartItems"].([]any); ok {
		items = SanitizeCartItems(rawItems)
	}

	return State{
		CartItems:        items,
		SelectedCustomer: SanitizeCustomer(m["selectedCustomer"]),
		Discount:         SanitizeDiscount(m["discount"]),
		Metadata: &Metadata{
			LastUpdated: time.Now(),
			TotalSales:  0,
		},
	}, nil
}

// migrateV1toV2 derives the version 2 payload from version 1. Not reached
// while CurrentVersion is 1.
func migrateV1toV2(data any) (any, error) {
	var v1 State
	switch typed := data.(type) {
	case State:
		v1 = typed
	case map[string]any:
		items := []entity.CartItem{}
		if rawItems, ok := typed["cartItems"].([]any); ok {
			items = SanitizeCartItems(rawItems)
		}
		v1 = State{
			CartItems:        items,
			SelectedCustomer: SanitizeCustomer(typed["selectedCustomer"]),
			Discount:         SanitizeDiscount(typed["discount"]),
		}
	}

	v2 := StateV2{
		State: v1,
		Settings: Settings{
			AutoSave: true,
			Theme:    "system",
			Language: "pt-BR",
		},
		RecentCustomers: []entity.Customer{},
		QuickActions:    []string{"F2", "F3", "F4", "F5"},
	}
	if v1.SelectedCustomer != nil {
		v2.RecentCustomers = []entity.Customer{*v1.SelectedCustomer}
	}
	return v2, nil
}

// Config assembles the migration configuration for the working-sale
// document, wiring the chain, defaults and validator together.
func Config(onError func(error)) migration.Config[State] {
	return migration.Config[State]{
		CurrentVersion:   CurrentVersion,
		Migrations:       Migrations(),
		DefaultData:      DefaultState,
		Validate:         Valid,
		OnMigrationError: onError,
	}
}
