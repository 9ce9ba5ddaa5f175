package handler

import (
	"net/http"

	"threadz/internal/delivery/http/middleware"
	"threadz/internal/delivery/http/response"
	"threadz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account data handlers. All
// routes are behind the auth middleware.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Orders returns the shopper's order history.
func (h *AccountHandler) Orders(c echo.Context) error {
	orders, err := h.uc.Orders(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Addresses returns the shopper's saved addresses.
func (h *AccountHandler) Addresses(c echo.Context) error {
	addresses, err := h.uc.Addresses(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// PaymentMethods returns the shopper's saved payment instruments.
func (h *AccountHandler) PaymentMethods(c echo.Context) error {
	methods, err := h.uc.PaymentMethods(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, methods, "")
}

// Wishlist returns the shopper's saved products.
func (h *AccountHandler) Wishlist(c echo.Context) error {
	products, err := h.uc.Wishlist(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}
