package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/config"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/handler"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	PDV          *handler.PDVHandler
	Budgets      *handler.SaleHandler
	PendingSales *handler.SaleHandler
	Backup       *handler.BackupHandler
	Product      *handler.ProductHandler
	Customer     *handler.CustomerHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerSaleRoutes(v1, h)
		registerSavedSaleRoutes(v1.Group("/budgets"), h.Budgets)
		registerSavedSaleRoutes(v1.Group("/pending-sales"), h.PendingSales)
		registerBackupRoutes(v1, h)
		registerCatalogRoutes(v1, h)
		registerUIRoutes(v1, h)
	}

	return router
}

// registerSaleRoutes wires the working sale: cart, customer selection,
// discount and finalization.
func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/sale", h.PDV.GetState)
	v1.POST("/sale/finalize", h.PDV.FinalizeSale)

	cart := v1.Group("/cart")
	{
		cart.POST("/items", h.PDV.AddItem)
		cart.PATCH("/items/:productId", h.PDV.UpdateQuantity)
		cart.DELETE("/items/:productId", h.PDV.RemoveItem)
		cart.DELETE("", h.PDV.ClearCart)
	}

	v1.PUT("/customer", h.PDV.SelectCustomer)
	v1.DELETE("/customer", h.PDV.ClearCustomer)

	v1.PUT("/discount", h.PDV.ApplyDiscount)
	v1.DELETE("/discount", h.PDV.ClearDiscount)
}

func registerSavedSaleRoutes(group *gin.RouterGroup, h *handler.SaleHandler) {
	group.GET("", h.List)
	group.POST("", h.Save)
	group.DELETE("", h.Clear)
	group.GET("/count", h.Count)
	group.GET("/:id", h.Get)
	group.POST("/:id/load", h.Load)
	group.DELETE("/:id", h.Delete)
}

func registerBackupRoutes(v1 *gin.RouterGroup, h *Handlers) {
	backups := v1.Group("/backups")
	{
		backups.GET("", h.Backup.List)
		backups.POST("/full", h.Backup.CreateFull)
		backups.POST("/cart", h.Backup.CreateCart)
		backups.POST("/:key/restore", h.Backup.Restore)
		backups.GET("/:key/validate", h.Backup.Validate)
		backups.DELETE("/:key", h.Backup.Delete)
	}
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/search", h.Product.Search)
		products.GET("/:id", h.Product.Get)
	}

	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/search", h.Customer.Search)
		customers.GET("/:id", h.Customer.Get)
	}
}

func registerUIRoutes(v1 *gin.RouterGroup, h *Handlers) {
	ui := v1.Group("/ui")
	{
		ui.PUT("/sidebar", h.PDV.SetSidebar)
		ui.PUT("/sidebar/toggle", h.PDV.ToggleSidebar)
		ui.PUT("/mobile", h.PDV.SetMobile)
		ui.PUT("/modals/:name", h.PDV.OpenModal)
		ui.DELETE("/modals/:name", h.PDV.CloseModal)
		ui.DELETE("/modals", h.PDV.CloseAllModals)
	}
}
