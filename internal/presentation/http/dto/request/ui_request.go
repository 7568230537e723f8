package request

// SetSidebarRequest represents the request to open or close the sidebar
type SetSidebarRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// SetMobileRequest represents the request to flag the mobile layout
type SetMobileRequest struct {
	Mobile *bool `json:"mobile" binding:"required"`
}
