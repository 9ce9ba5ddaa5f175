package handler

import (
	"log/slog"
	"net/http"

	"threadz/internal/delivery/http/response"
	"threadz/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

type addItemRequest struct {
	ProductID int     `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
	Size      string  `json:"size" validate:"required"`
	Color     string  `json:"color" validate:"required"`
	Quantity  int     `json:"quantity"`
}

type updateQuantityRequest struct {
	ProductID int    `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type removeItemRequest struct {
	ProductID int    `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
}

// GetCart returns the current cart snapshot.
func (h *CartHandler) GetCart(c echo.Context) error {
	snapshot := h.uc.Snapshot(c.Request().Context())

	return response.Success(c, http.StatusOK, snapshot, "")
}

// AddItem adds a line to the cart, merging with an existing line that
// matches on product, size and color.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snapshot := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})

	return response.Success(c, http.StatusOK, snapshot, "Item added")
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snapshot := h.uc.UpdateQuantity(c.Request().Context(), usecase.UpdateQuantityInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})

	return response.Success(c, http.StatusOK, snapshot, "Quantity updated")
}

// RemoveItem removes a line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	var req removeItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	snapshot := h.uc.RemoveItem(c.Request().Context(), usecase.RemoveItemInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
	})

	return response.Success(c, http.StatusOK, snapshot, "Item removed")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	snapshot := h.uc.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, snapshot, "Cart cleared")
}
