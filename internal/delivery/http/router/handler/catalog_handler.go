package handler

import (
	"net/http"
	"strconv"

	"threadz/internal/delivery/http/response"
	"threadz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for product browsing handlers.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts returns the catalog filtered and sorted by query params.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Category:   c.QueryParam("category"),
		Gender:     c.QueryParam("gender"),
		PriceRange: c.QueryParam("priceRange"),
		Size:       c.QueryParam("size"),
		SortBy:     c.QueryParam("sortBy"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct returns a single product by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Product id must be a number")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}
