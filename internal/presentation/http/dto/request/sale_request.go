package request

// SaveSaleRequest represents the request to stash the working sale into
// a saved-sale collection
type SaveSaleRequest struct {
	Notes *string `json:"notes" binding:"omitempty,max=500"`
}
