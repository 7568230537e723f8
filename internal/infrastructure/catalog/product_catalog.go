// Package catalog provides the in-memory product and customer catalogs
// consumed by the terminal. Real inventory lives elsewhere; the terminal
// only needs a read-mostly snapshot to sell from.
package catalog

import (
	"context"
	"sync"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/repository"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/search"
)

type productCatalog struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewProductCatalog creates a catalog seeded with the default product set.
func NewProductCatalog() repository.ProductRepository {
	return &productCatalog{products: seedProducts()}
}

// NewProductCatalogWith creates a catalog with a caller-supplied product
// set. Tests use it to control prices.
func NewProductCatalogWith(products []entity.Product) repository.ProductRepository {
	return &productCatalog{products: products}
}

func (c *productCatalog) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			product := c.products[i]
			return &product, nil
		}
	}
	return nil, nil
}

func (c *productCatalog) List(ctx context.Context) ([]entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *productCatalog) Search(ctx context.Context, term string) ([]entity.Product, error) {
	products, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Fuzzy(products, term, func(p entity.Product) []string {
		return []string{p.Name, p.Code, p.Category, p.Description}
	}), nil
}
