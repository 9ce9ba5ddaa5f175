package usecase

import (
	"context"

	"threadz/internal/domain/entity"
)

// Sort orders accepted by ListProducts. An empty sort keeps the
// featured (insertion) order.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
)

// ListProductsInput narrows and orders the catalog. Empty fields are
// ignored. PriceRange uses the "min-max" form, e.g. "50-100".
type ListProductsInput struct {
	Category   string
	Gender     string
	PriceRange string
	Size       string
	SortBy     string
}

// CatalogUsecase exposes read-only product browsing.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
}
