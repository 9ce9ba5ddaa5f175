package impl

import (
	"context"
	"testing"

	domainerrors "threadz/internal/domain/errors"
	"threadz/internal/infra/catalog"
	"threadz/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService() usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{Catalog: catalog.New()})
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService()

	t.Run("no filters returns the full collection in featured order", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, usecase.ListProductsInput{})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		assert.Equal(t, "Urban Classic Hoodie", products[0].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, usecase.ListProductsInput{Category: "Hoodies"})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, "Hoodies", p.Category)
		}
	})

	t.Run("price range filter", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, usecase.ListProductsInput{PriceRange: "50-100"})
		require.NoError(t, err)
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.GreaterOrEqual(t, p.Price, 50.0)
			assert.LessOrEqual(t, p.Price, 100.0)
		}
	})

	t.Run("size filter", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, usecase.ListProductsInput{Size: "XXL"})
		require.NoError(t, err)
		for _, p := range products {
			assert.True(t, p.HasSize("XXL"))
		}
	})

	t.Run("sort by price ascending", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, usecase.ListProductsInput{SortBy: usecase.SortPriceLow})
		require.NoError(t, err)
		for i := 1; i < len(products); i++ {
			assert.LessOrEqual(t, products[i-1].Price, products[i].Price)
		}
	})

	t.Run("sort by newest", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, usecase.ListProductsInput{SortBy: usecase.SortNewest})
		require.NoError(t, err)
		for i := 1; i < len(products); i++ {
			assert.GreaterOrEqual(t, products[i-1].CreatedAt, products[i].CreatedAt)
		}
	})

	t.Run("bad price range is rejected", func(t *testing.T) {
		_, err := svc.ListProducts(ctx, usecase.ListProductsInput{PriceRange: "cheap"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown sort is rejected", func(t *testing.T) {
		_, err := svc.ListProducts(ctx, usecase.ListProductsInput{SortBy: "alphabetical"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService()

	t.Run("found", func(t *testing.T) {
		p, err := svc.GetProduct(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "High-Top Sneakers", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, 999)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}
