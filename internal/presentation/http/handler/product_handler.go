package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/repository"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/response"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/pagination"
)

// ProductHandler serves the product catalog the terminal sells from.
type ProductHandler struct {
	products repository.ProductRepository
}

func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /products. An optional q query switches to fuzzy
// search over code, name and category.
func (h *ProductHandler) List(c *gin.Context) {
	if term := c.Query("q"); term != "" {
		products, err := h.products.Search(c.Request.Context(), term)
		if err != nil {
			response.Error(c, err)
			return
		}
		result := pagination.Paginate(products, paginationParams(c))
		response.SuccessWithPagination(c, 200, "Products", result)
		return
	}

	products, err := h.products.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.Paginate(products, paginationParams(c))
	response.SuccessWithPagination(c, 200, "Products", result)
}

// Search handles GET /products/search
func (h *ProductHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	products, err := h.products.Search(c.Request.Context(), term)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.Paginate(products, paginationParams(c))
	response.SuccessWithPagination(c, 200, "Products", result)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product", product)
}
