package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/enum"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/repository"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/infrastructure/storage"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/apperror"
)

// SaleService manages the saved-sale collections: budgets and pending
// sales. Both are unbounded lists in the persistent store, independent
// of the in-memory working sale.
type SaleService struct {
	store    storage.Store
	pdv      *PDVService
	products repository.ProductRepository
	logger   *zap.Logger

	// mu serializes the read-modify-write cycle on the stored lists.
	// The store only makes individual reads and writes atomic, so two
	// concurrent upserts would otherwise overwrite each other.
	mu sync.Mutex
}

func NewSaleService(store storage.Store, pdv *PDVService, products repository.ProductRepository, logger *zap.Logger) *SaleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SaleService{store: store, pdv: pdv, products: products, logger: logger}
}

func collectionKey(kind enum.SaleKind) string {
	if kind == enum.SaleKindPending {
		return storage.KeyPendingSales
	}
	return storage.KeyBudgets
}

// GetAll returns every saved sale of the collection. Line items missing
// an image are backfilled from the catalog for compatibility with
// records persisted before images were stored.
func (s *SaleService) GetAll(ctx context.Context, kind enum.SaleKind) []entity.SavedSale {
	sales := storage.Get(s.store, collectionKey(kind), []entity.SavedSale{})
	for i := range sales {
		sales[i].Items = s.backfillImages(ctx, sales[i].Items)
	}
	return sales
}

// GetByID returns one saved sale, or a not-found error.
func (s *SaleService) GetByID(ctx context.Context, kind enum.SaleKind, id string) (*entity.SavedSale, error) {
	for _, sale := range s.GetAll(ctx, kind) {
		if sale.ID == id {
			return &sale, nil
		}
	}
	return nil, apperror.NewNotFoundError("Saved sale")
}

// Save upserts a record by id.
func (s *SaleService) Save(ctx context.Context, kind enum.SaleKind, sale entity.SavedSale) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales := storage.Get(s.store, collectionKey(kind), []entity.SavedSale{})
	replaced := false
	for i := range sales {
		if sales[i].ID == sale.ID {
			sales[i] = sale
			replaced = true
			break
		}
	}
	if !replaced {
		sales = append(sales, sale)
	}
	s.store.Set(collectionKey(kind), sales)
}

// Remove deletes a record by id. Removing an absent record is a no-op.
func (s *SaleService) Remove(ctx context.Context, kind enum.SaleKind, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales := storage.Get(s.store, collectionKey(kind), []entity.SavedSale{})
	filtered := sales[:0]
	for _, sale := range sales {
		if sale.ID != id {
			filtered = append(filtered, sale)
		}
	}
	s.store.Set(collectionKey(kind), filtered)
}

// Clear drops the whole collection.
func (s *SaleService) Clear(kind enum.SaleKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Remove(collectionKey(kind))
}

// Count returns the number of records in the collection.
func (s *SaleService) Count(kind enum.SaleKind) int {
	return len(storage.Get(s.store, collectionKey(kind), []entity.SavedSale{}))
}

// SaveFromWorkingSale snapshots the current working sale into the
// collection. The working sale itself is left untouched; the cashier
// decides separately whether to clear it.
func (s *SaleService) SaveFromWorkingSale(ctx context.Context, kind enum.SaleKind, notes *string) (*entity.SavedSale, error) {
	view := s.pdv.Snapshot()
	if len(view.CartItems) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	sale := entity.SavedSale{
		ID:       entity.NewSavedSaleID(kind),
		Date:     time.Now(),
		Customer: view.SelectedCustomer,
		Items:    view.CartItems,
		Discount: view.Discount,
		Subtotal: view.Subtotal,
		Total:    view.Total,
		Notes:    notes,
	}
	s.Save(ctx, kind, sale)

	s.logger.Info("working sale saved",
		zap.String("kind", kind.String()), zap.String("id", sale.ID))
	return &sale, nil
}

// LoadIntoWorkingSale restores a saved sale into the terminal and then
// deletes the record: a saved sale lives until it is resumed or
// explicitly removed.
func (s *SaleService) LoadIntoWorkingSale(ctx context.Context, kind enum.SaleKind, id string) (*entity.SavedSale, error) {
	sale, err := s.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	s.pdv.RestoreWorkingSale(sale.Items, sale.Customer, sale.Discount)
	s.Remove(ctx, kind, id)

	s.logger.Info("saved sale resumed",
		zap.String("kind", kind.String()), zap.String("id", sale.ID))
	return sale, nil
}

func (s *SaleService) backfillImages(ctx context.Context, items []entity.CartItem) []entity.CartItem {
	for i := range items {
		if items[i].Image != "" {
			continue
		}
		product, err := s.products.GetByID(ctx, items[i].ProductID)
		if err == nil && product != nil && product.Image != "" {
			items[i].Image = product.Image
		} else {
			items[i].Image = entity.PlaceholderImage
		}
	}
	return items
}
