package entity

// PlaceholderImage is the fallback image reference for products and cart
// lines persisted before images were stored alongside them.
const PlaceholderImage = "/placeholder.jpg"

// ProductVariants lists the available variations of a product.
type ProductVariants struct {
	Size  []string `json:"size,omitempty"`
	Color []string `json:"color,omitempty"`
}

// Product represents a catalog product available for sale.
type Product struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       float64          `json:"price"`
	Image       string           `json:"image"`
	Stock       int              `json:"stock"`
	Variants    *ProductVariants `json:"variants,omitempty"`
}
