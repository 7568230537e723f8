package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/repository"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/request"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/response"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/pagination"
)

// CustomerHandler serves the customer registry.
type CustomerHandler struct {
	customers repository.CustomerRepository
}

func NewCustomerHandler(customers repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List handles GET /customers. An optional q query switches to fuzzy
// search over name, phone and document.
func (h *CustomerHandler) List(c *gin.Context) {
	if term := c.Query("q"); term != "" {
		customers, err := h.customers.Search(c.Request.Context(), term)
		if err != nil {
			response.Error(c, err)
			return
		}
		result := pagination.Paginate(customers, paginationParams(c))
		response.SuccessWithPagination(c, 200, "Customers", result)
		return
	}

	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.Paginate(customers, paginationParams(c))
	response.SuccessWithPagination(c, 200, "Customers", result)
}

// Search handles GET /customers/search
func (h *CustomerHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	customers, err := h.customers.Search(c.Request.Context(), term)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.Paginate(customers, paginationParams(c))
	response.SuccessWithPagination(c, 200, "Customers", result)
}

// Get handles GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer", customer)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer := entity.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Type:  enum.CustomerType(req.Type),
	}
	if req.Email != "" {
		customer.Email = &req.Email
	}
	if req.CPFCNPJ != "" {
		customer.CPFCNPJ = &req.CPFCNPJ
	}
	if req.Address != nil {
		customer.Address = &entity.Address{
			Street:       req.Address.Street,
			Number:       req.Address.Number,
			Complement:   req.Address.Complement,
			Neighborhood: req.Address.Neighborhood,
			City:         req.Address.City,
			State:        req.Address.State,
			ZipCode:      req.Address.ZipCode,
		}
	}

	if err := h.customers.Create(c.Request.Context(), &customer); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}
