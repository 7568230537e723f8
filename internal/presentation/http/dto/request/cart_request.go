package request

// AddCartItemRequest represents the request to add a product to the cart
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// UpdateQuantityRequest represents the request to change a cart line quantity.
// Zero and negative values remove the line, so the field is a pointer to
// distinguish an explicit zero from a missing field.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
