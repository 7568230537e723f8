package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/application/service"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/schema"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/backup"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/catalog"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/migration"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/dto/response"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.PDVService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore(nil)
	documents := migration.NewManager(store, schema.Config(nil), nil)
	pdv := service.NewPDVService(store, documents, backup.NewManager(store, nil),
		catalog.NewProductCatalogWith([]entity.Product{
			{ID: "p1", Code: "P1", Name: "Camiseta", Price: 50.00, Image: "/p1.jpg", Stock: 10},
		}),
		catalog.NewCustomerCatalogWith(nil), nil)
	pdv.Hydrate()

	h := NewPDVHandler(pdv)
	router := gin.New()
	router.POST("/cart/items", h.AddItem)
	router.PUT("/discount", h.ApplyDiscount)
	router.DELETE("/discount", h.ClearDiscount)
	router.GET("/sale", h.GetState)
	return router, pdv
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestApplyDiscountRejectsPercentageOver100(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/discount", `{"type":"percentage","value":150}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
}

func TestApplyDiscountRejectsFixedAboveSubtotal(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/cart/items", `{"productId":"p1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/discount", `{"type":"fixed","value":60}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/discount", `{"type":"fixed","value":50}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyDiscountAcceptsValidPercentage(t *testing.T) {
	router, pdv := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/cart/items", `{"productId":"p1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/discount", `{"type":"percentage","value":10}`)
	require.Equal(t, http.StatusOK, rec.Code)

	view := pdv.Snapshot()
	assert.InDelta(t, 5.0, view.DiscountAmount, 1e-9)
	assert.InDelta(t, 45.0, view.Total, 1e-9)
}

func TestApplyDiscountRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/discount", `{"type":"loyalty","value":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/discount", `{"type":"fixed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStateReturnsSnapshot(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/cart/items", `{"productId":"p1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/sale", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data service.StateView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.CartItems, 1)
	assert.InDelta(t, 50.0, body.Data.Subtotal, 1e-9)
	assert.True(t, body.Data.IsInitialized)
}
