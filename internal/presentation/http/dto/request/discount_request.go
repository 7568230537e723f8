package request

// ApplyDiscountRequest represents the request to apply a discount to the sale
type ApplyDiscountRequest struct {
	Type  string  `json:"type" binding:"required,oneof=percentage fixed"`
	Value float64 `json:"value" binding:"required,gt=0"`
}
