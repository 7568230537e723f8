package entity

// Variant describes the chosen product variation for a cart line.
type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// CartItem represents a line item in the working sale. Subtotal is always
// derived from Quantity and UnitPrice; callers must go through Recalculate
// after changing either field.
type CartItem struct {
	ProductID string   `json:"productId"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
	Subtotal  float64  `json:"subtotal"`
	Variant   *Variant `json:"variant,omitempty"`
}

// Recalculate sets Subtotal to Quantity x UnitPrice.
func (i *CartItem) Recalculate() {
	i.Subtotal = float64(i.Quantity) * i.UnitPrice
}

// NewCartItem builds a line item for the given product seeded with
// quantity 1 and the product's first listed size and color, if any.
func NewCartItem(p *Product) CartItem {
	item := CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Quantity:  1,
		UnitPrice: p.Price,
		Subtotal:  p.Price,
	}
	if p.Variants != nil {
		variant := &Variant{}
		if len(p.Variants.Size) > 0 {
			variant.Size = p.Variants.Size[0]
		}
		if len(p.Variants.Color) > 0 {
			variant.Color = p.Variants.Color[0]
		}
		if variant.Size != "" || variant.Color != "" {
			item.Variant = variant
		}
	}
	return item
}
