// Package schema defines the versioned shape of the terminal's persisted
// working-sale document, the migrations between versions, and the
// sanitizers applied defensively on every load.
package schema

import (
	"time"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
)

// CurrentVersion is the schema version written by this build.
const CurrentVersion = 1

// Metadata carries bookkeeping fields attached at version 1.
type Metadata struct {
	LastUpdated time.Time `json:"lastUpdated"`
	TotalSales  int       `json:"totalSales"`
}

// State is the version 1 working-sale payload persisted under the
// working-sale key.
type State struct {
	CartItems        []entity.CartItem `json:"cartItems"`
	SelectedCustomer *entity.Customer  `json:"selectedCustomer"`
	Discount         entity.Discount   `json:"discount"`
	Metadata         *Metadata         `json:"metadata,omitempty"`
}

// Settings is the terminal preference block added at version 2.
type Settings struct {
	AutoSave bool   `json:"autoSave"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// StateV2 is the version 2 payload. Reserved: version 2 is defined and
// reachable through the chain but not yet the current version.
type StateV2 struct {
	State
	Settings        Settings          `json:"settings"`
	RecentCustomers []entity.Customer `json:"recentCustomers"`
	QuickActions    []string          `json:"quickActions"`
}

// DefaultState returns the payload for a fresh terminal: empty cart, no
// customer, no discount.
func DefaultState() State {
	return State{
		CartItems:        []entity.CartItem{},
		SelectedCustomer: nil,
		Discount:         entity.NoDiscount(),
		Metadata: &Metadata{
			LastUpdated: time.Now(),
			TotalSales:  0,
		},
	}
}

// Valid reports whether data is a structurally sound version 1 payload.
func Valid(data State) bool {
	if data.CartItems == nil {
		return false
	}
	return data.Discount.Type.Valid()
}
