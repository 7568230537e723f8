package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/repository"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/apperror"
	"github.com/leonardodavinci2049/point-of-sale-v2/pkg/search"
)

type customerCatalog struct {
	mu        sync.RWMutex
	customers []entity.Customer
}

// NewCustomerCatalog creates a catalog seeded with the default customers.
func NewCustomerCatalog() repository.CustomerRepository {
	return &customerCatalog{customers: seedCustomers()}
}

// NewCustomerCatalogWith creates a catalog with a caller-supplied set.
func NewCustomerCatalogWith(customers []entity.Customer) repository.CustomerRepository {
	return &customerCatalog{customers: customers}
}

func (c *customerCatalog) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.customers {
		if c.customers[i].ID == id {
			customer := c.customers[i]
			return &customer, nil
		}
	}
	return nil, nil
}

func (c *customerCatalog) List(ctx context.Context) ([]entity.Customer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Customer, len(c.customers))
	copy(out, c.customers)
	return out, nil
}

func (c *customerCatalog) Search(ctx context.Context, term string) ([]entity.Customer, error) {
	customers, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Fuzzy(customers, term, func(cu entity.Customer) []string {
		fields := []string{cu.Name, cu.Phone}
		if cu.Email != nil {
			fields = append(fields, *cu.Email)
		}
		if cu.CPFCNPJ != nil {
			fields = append(fields, *cu.CPFCNPJ)
		}
		return fields
	}), nil
}

// Create registers a new customer, filling in id, avatar and creation
// time when missing.
func (c *customerCatalog) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.Name == "" || customer.Phone == "" {
		return apperror.NewBadRequestError("Customer name and phone are required")
	}
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.Avatar == "" {
		customer.Avatar = entity.GenerateAvatarURL(customer.Name)
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.customers {
		if c.customers[i].ID == customer.ID {
			return apperror.ErrConflict
		}
	}
	c.customers = append(c.customers, *customer)
	return nil
}
