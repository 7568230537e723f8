package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
)

// SavedSale is a snapshot of a working sale set aside for later resumption.
// Budgets and pending sales share this shape; the collection a record
// belongs to is decided by the storage key it is saved under.
type SavedSale struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	Customer *Customer  `json:"customer"`
	Items    []CartItem `json:"items"`
	Discount Discount   `json:"discount"`
	Subtotal float64    `json:"subtotal"`
	Total    float64    `json:"total"`
	Notes    *string    `json:"notes,omitempty"`
}

// NewSavedSaleID generates a unique identifier for a saved sale, prefixed
// with the collection it belongs to.
func NewSavedSaleID(kind enum.SaleKind) string {
	return kind.IDPrefix() + "-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
