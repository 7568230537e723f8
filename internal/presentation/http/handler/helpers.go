package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/pagination"
)

// paginationParams extracts page and per_page from the query string,
// falling back to defaults on absent or malformed values.
func paginationParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	return params
}
