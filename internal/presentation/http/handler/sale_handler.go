package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/application/service"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/request"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/response"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/pagination"
)

// SaleHandler serves one saved-sale collection. Two instances are
// registered, one for budgets and one for pending sales.
type SaleHandler struct {
	sales *service.SaleService
	kind  enum.SaleKind
}

func NewSaleHandler(sales *service.SaleService, kind enum.SaleKind) *SaleHandler {
	return &SaleHandler{sales: sales, kind: kind}
}

// List handles GET /
func (h *SaleHandler) List(c *gin.Context) {
	sales := h.sales.GetAll(c.Request.Context(), h.kind)
	result := pagination.Paginate(sales, paginationParams(c))
	response.SuccessWithPagination(c, 200, "Saved sales", result)
}

// Count handles GET /count
func (h *SaleHandler) Count(c *gin.Context) {
	response.OK(c, "Saved sale count", gin.H{"count": h.sales.Count(h.kind)})
}

// Get handles GET /:id
func (h *SaleHandler) Get(c *gin.Context) {
	sale, err := h.sales.GetByID(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Saved sale", sale)
}

// Save handles POST /: it snapshots the current working sale into the
// collection.
func (h *SaleHandler) Save(c *gin.Context) {
	// The body is optional: saving without notes is the common path.
	var req request.SaveSaleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	sale, err := h.sales.SaveFromWorkingSale(c.Request.Context(), h.kind, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Working sale saved", sale)
}

// Load handles POST /:id/load: it restores the record into the working
// sale and deletes it from the collection.
func (h *SaleHandler) Load(c *gin.Context) {
	sale, err := h.sales.LoadIntoWorkingSale(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Saved sale loaded into terminal", sale)
}

// Delete handles DELETE /:id
func (h *SaleHandler) Delete(c *gin.Context) {
	h.sales.Remove(c.Request.Context(), h.kind, c.Param("id"))
	response.NoContent(c)
}

// Clear handles DELETE /
func (h *SaleHandler) Clear(c *gin.Context) {
	h.sales.Clear(h.kind)
	response.NoContent(c)
}
