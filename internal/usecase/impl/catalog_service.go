package impl

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"threadz/internal/domain/entity"
	domainerrors "threadz/internal/domain/errors"
	"threadz/internal/domain/repository"
	"threadz/internal/errors"
	"threadz/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog repository.ProductCatalog
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog repository.ProductCatalog
}

// NewCatalogService creates the product browsing service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{catalog: params.Catalog}
}

func (s *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]entity.Product, error) {
	products, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	filtered := products[:0:0]
	minPrice, maxPrice, hasRange, err := parsePriceRange(input.PriceRange)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if input.Category != "" && p.Category != input.Category {
			continue
		}
		if input.Gender != "" && string(p.Gender) != input.Gender {
			continue
		}
		if hasRange && (p.Price < minPrice || p.Price > maxPrice) {
			continue
		}
		if input.Size != "" && !p.HasSize(input.Size) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch input.SortBy {
	case "", usecase.SortFeatured:
		// Catalog order is the featured order.
	case usecase.SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case usecase.SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case usecase.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt > filtered[j].CreatedAt })
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown sort order: " + input.SortBy)
	}

	return filtered, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	p, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrapf(err, "find product %d", id)
	}

	return p, nil
}

// parsePriceRange parses the "min-max" form used by the shop filters.
func parsePriceRange(s string) (minPrice, maxPrice float64, ok bool, err error) {
	if s == "" {
		return 0, 0, false, nil
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false, domainerrors.ErrValidationFailed.WrapMessage("price range must be min-max")
	}

	minPrice, errMin := strconv.ParseFloat(parts[0], 64)
	maxPrice, errMax := strconv.ParseFloat(parts[1], 64)
	if errMin != nil || errMax != nil || minPrice > maxPrice {
		return 0, 0, false, domainerrors.ErrValidationFailed.WrapMessage("price range must be min-max")
	}

	return minPrice, maxPrice, true, nil
}
