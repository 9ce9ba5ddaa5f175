package repository

import (
	"context"
	"errors"

	"threadz/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductCatalog is the read-only catalog collaborator. The state containers
// never mutate products; the catalog only answers queries.
type ProductCatalog interface {
	// ListAll returns every product in catalog order (the "featured" order).
	ListAll(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product, or ErrProductNotFound.
	FindByID(ctx context.Context, id int) (*entity.Product, error)
}
