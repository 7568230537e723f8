package repository

import (
	"context"

	"github.com/leonardodavinci2049/point-of-sale-v2/internal/domain/entity"
)

// ProductRepository defines read access to the product catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Search(ctx context.Context, term string) ([]entity.Product, error)
}

// CustomerRepository defines access to the customer catalog.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Search(ctx context.Context, term string) ([]entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
}
