package schema

import (
	"time"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
)

// unknownProductID is the sentinel a malformed cart line's product id
// coerces to; lines carrying it are dropped.
const unknownProductID = "unknown"

// SanitizeCartItems rebuilds a cart line list from untyped JSON values,
// coercing every field to a usable value and dropping entries without a
// string product id.
func SanitizeCartItems(items []any) []entity.CartItem {
	out := make([]entity.CartItem, 0, len(items))
	for _, raw := range items {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		item := entity.CartItem{
			ProductID: stringOr(m["productId"], unknownProductID),
			Name:      stringOr(m["name"], "Produto desconhecido"),
			Image:     stringOr(m["image"], entity.PlaceholderImage),
			Quantity:  1,
			UnitPrice: numberOrZero(m["unitPrice"]),
			Subtotal:  numberOrZero(m["subtotal"]),
		}
		if q, ok := m["quantity"].(float64); ok && q > 0 {
			item.Quantity = int(q)
		}
		if v, ok := m["variant"].(map[string]any); ok {
			item.Variant = &entity.Variant{
				Size:  stringOr(v["size"], ""),
				Color: stringOr(v["color"], ""),
			}
		}
		if item.ProductID == unknownProductID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SanitizeCustomer rebuilds a customer from an untyped JSON value. It
// returns nil unless id, name and phone are all present as strings; every
// other field falls back to a default.
func SanitizeCustomer(customer any) *entity.Customer {
	m, ok := customer.(map[string]any)
	if !ok {
		return nil
	}
	id, idOK := m["id"].(string)
	name, nameOK := m["name"].(string)
	phone, phoneOK := m["phone"].(string)
	if !idOK || !nameOK || !phoneOK {
		return nil
	}

	c := &entity.Customer{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Avatar:    stringOr(m["avatar"], entity.PlaceholderAvatar),
		Type:      enum.CustomerTypeIndividual,
		CreatedAt: time.Now(),
	}
	if m["type"] == string(enum.CustomerTypeBusiness) {
		c.Type = enum.CustomerTypeBusiness
	}
	if email, ok := m["email"].(string); ok {
		c.Email = &email
	}
	if doc, ok := m["cpf_cnpj"].(string); ok {
		c.CPFCNPJ = &doc
	}
	if addr, ok := m["address"].(map[string]any); ok {
		c.Address = &entity.Address{
			Street:       stringOr(addr["street"], ""),
			Number:       stringOr(addr["number"], ""),
			Complement:   stringOr(addr["complement"], ""),
			Neighborhood: stringOr(addr["neighborhood"], ""),
			City:         stringOr(addr["city"], ""),
			State:        stringOr(addr["state"], ""),
			ZipCode:      stringOr(addr["zipCode"], ""),
		}
	}
	if createdAt, ok := m["createdAt"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
			c.CreatedAt = parsed
		}
	}
	return c
}

// SanitizeDiscount rebuilds a discount from an untyped JSON value,
// forcing the type to none unless it is exactly "percentage" or "fixed"
// and the value to 0 unless it is a non-negative number.
func SanitizeDiscount(discount any) entity.Discount {
	m, ok := discount.(map[string]any)
	if !ok {
		return entity.NoDiscount()
	}
	d := entity.NoDiscount()
	switch m["type"] {
	case string(enum.DiscountTypePercentage):
		d.Type = enum.DiscountTypePercentage
	case string(enum.DiscountTypeFixed):
		d.Type = enum.DiscountTypeFixed
	}
	if v, ok := m["value"].(float64); ok && v >= 0 {
		d.Value = v
	}
	return d
}

// SanitizeState is the defensive pass run on every load, even for
// documents already at the current version.
func SanitizeState(s State) State {
	items := make([]entity.CartItem, 0, len(s.CartItems))
	for _, item := range s.CartItems {
		if item.ProductID == "" || item.ProductID == unknownProductID {
			continue
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		if item.UnitPrice < 0 {
			item.UnitPrice = 0
		}
		if item.Image == "" {
			item.Image = entity.PlaceholderImage
		}
		item.Recalculate()
		items = append(items, item)
	}
	s.CartItems = items

	if c := s.SelectedCustomer; c != nil {
		if c.ID == "" || c.Name == "" || c.Phone == "" {
			s.SelectedCustomer = nil
		} else {
			if c.Avatar == "" {
				c.Avatar = entity.PlaceholderAvatar
			}
			if c.CreatedAt.IsZero() {
				c.CreatedAt = time.Now()
			}
		}
	}

	if !s.Discount.Type.Valid() {
		s.Discount.Type = enum.DiscountTypeNone
	}
	if s.Discount.Value < 0 {
		s.Discount.Value = 0
	}
	return s
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func numberOrZero(v any) float64 {
	if f, ok := v.(float64); ok && f >= 0 {
		return f
	}
	return 0
}
