package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/application/service"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/config"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/schema"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/backup"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/catalog"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/migration"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/handler"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the key-value store
	var store storage.Store
	if cfg.Storage.InMemory {
		store = storage.NewMemoryStore(logger)
	} else {
		store = storage.NewFileStore(cfg.Storage.Dir, logger)
	}
	if !store.Available() {
		logger.Warn("persistent store unavailable, state will not survive restarts",
			zap.String("dir", cfg.Storage.Dir))
	}

	// Assemble the migration set and assert the chain is contiguous
	// before serving anything.
	migrationCfg := schema.Config(func(err error) {
		logger.Error("state migration failed, defaults restored", zap.Error(err))
	})
	if err := migrationCfg.VerifyChain(); err != nil {
		if cfg.App.Env == "development" {
			logger.Fatal("migration chain is broken", zap.Error(err))
		}
		logger.Warn("migration chain is broken", zap.Error(err))
	}

	documents := migration.NewManager(store, migrationCfg, logger)
	backups := backup.NewManager(store, logger)

	// Initialize catalogs
	productCatalog := catalog.NewProductCatalog()
	customerCatalog := catalog.NewCustomerCatalog()

	// Initialize services
	pdvService := service.NewPDVService(store, documents, backups, productCatalog, customerCatalog, logger)
	saleService := service.NewSaleService(store, pdvService, productCatalog, logger)
	backupService := service.NewBackupService(backups, cfg.Backup, logger)

	// Restore persisted state into the terminal
	pdvService.Hydrate()

	// Initialize handlers
	h := &routes.Handlers{
		PDV:          handler.NewPDVHandler(pdvService),
		Budgets:      handler.NewSaleHandler(saleService, enum.SaleKindBudget),
		PendingSales: handler.NewSaleHandler(saleService, enum.SaleKindPending),
		Backup:       handler.NewBackupHandler(backupService),
		Product:      handler.NewProductHandler(productCatalog),
		Customer:     handler.NewCustomerHandler(customerCatalog),
	}

	router := routes.Setup(h, &routes.Deps{Cfg: cfg, Logger: logger})

	logger.Info("starting terminal API",
		zap.String("service", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
