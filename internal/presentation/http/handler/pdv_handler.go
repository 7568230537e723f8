package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/application/service"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/request"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/response"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/apperror"
)

// PDVHandler exposes the working sale of the terminal: cart lines,
// selected customer, discount, totals and the UI flags.
type PDVHandler struct {
	pdv *service.PDVService
}

func NewPDVHandler(pdv *service.PDVService) *PDVHandler {
	return &PDVHandler{pdv: pdv}
}

// GetState handles GET /sale
func (h *PDVHandler) GetState(c *gin.Context) {
	response.OK(c, "Current terminal state", h.pdv.Snapshot())
}

// AddItem handles POST /cart/items
func (h *PDVHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.pdv.AddItem(c.Request.Context(), req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added to cart", item)
}

// UpdateQuantity handles PATCH /cart/items/:productId
func (h *PDVHandler) UpdateQuantity(c *gin.Context) {
	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.pdv.UpdateQuantity(c.Param("productId"), *req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", h.pdv.Snapshot())
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *PDVHandler) RemoveItem(c *gin.Context) {
	h.pdv.RemoveItem(c.Param("productId"))
	response.OK(c, "Item removed", h.pdv.Snapshot())
}

// ClearCart handles DELETE /cart
func (h *PDVHandler) ClearCart(c *gin.Context) {
	h.pdv.ClearCart()
	response.OK(c, "Cart cleared", h.pdv.Snapshot())
}

// SelectCustomer handles PUT /customer
func (h *PDVHandler) SelectCustomer(c *gin.Context) {
	var req request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.pdv.SetCustomer(c.Request.Context(), req.CustomerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer selected", h.pdv.Snapshot())
}

// ClearCustomer handles DELETE /customer
func (h *PDVHandler) ClearCustomer(c *gin.Context) {
	h.pdv.ClearCustomer()
	response.OK(c, "Customer cleared", h.pdv.Snapshot())
}

// ApplyDiscount handles PUT /discount. Bounds are checked here, at the
// edge: the service trusts its caller.
func (h *PDVHandler) ApplyDiscount(c *gin.Context) {
	var req request.ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	discountType := enum.DiscountType(req.Type)
	subtotal := h.pdv.Subtotal()

	if discountType == enum.DiscountTypePercentage && req.Value > 100 {
		response.Error(c, apperror.ErrPercentageTooLarge)
		return
	}
	if discountType == enum.DiscountTypeFixed && req.Value > subtotal {
		response.Error(c, apperror.ErrFixedTooLarge)
		return
	}

	if err := h.pdv.SetDiscount(discountType, req.Value); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount applied", h.pdv.Snapshot())
}

// ClearDiscount handles DELETE /discount
func (h *PDVHandler) ClearDiscount(c *gin.Context) {
	h.pdv.ClearDiscount()
	response.OK(c, "Discount cleared", h.pdv.Snapshot())
}

// FinalizeSale handles POST /sale/finalize
func (h *PDVHandler) FinalizeSale(c *gin.Context) {
	if err := h.pdv.FinalizeSale(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale finalized", h.pdv.Snapshot())
}

// OpenModal handles PUT /ui/modals/:name
func (h *PDVHandler) OpenModal(c *gin.Context) {
	if err := h.pdv.OpenModal(c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Modal opened", h.pdv.Snapshot())
}

// CloseModal handles DELETE /ui/modals/:name
func (h *PDVHandler) CloseModal(c *gin.Context) {
	if err := h.pdv.CloseModal(c.Param("name")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Modal closed", h.pdv.Snapshot())
}

// CloseAllModals handles DELETE /ui/modals
func (h *PDVHandler) CloseAllModals(c *gin.Context) {
	h.pdv.CloseAllModals()
	response.OK(c, "All modals closed", h.pdv.Snapshot())
}

// SetSidebar handles PUT /ui/sidebar
func (h *PDVHandler) SetSidebar(c *gin.Context) {
	var req request.SetSidebarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.pdv.SetSidebarOpen(*req.Open)
	response.OK(c, "Sidebar updated", h.pdv.Snapshot())
}

// ToggleSidebar handles PUT /ui/sidebar/toggle
func (h *PDVHandler) ToggleSidebar(c *gin.Context) {
	h.pdv.ToggleSidebar()
	response.OK(c, "Sidebar toggled", h.pdv.Snapshot())
}

// SetMobile handles PUT /ui/mobile
func (h *PDVHandler) SetMobile(c *gin.Context) {
	var req request.SetMobileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.pdv.SetMobile(*req.Mobile)
	response.OK(c, "Mobile layout updated", h.pdv.Snapshot())
}
