// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"threadz/internal/domain/entity"
)

// --- Input DTOs ---

// AddItemInput identifies a product line to add to the cart. Lines are
// distinguished by product, size and color; adding a line that already
// exists increases its quantity instead of duplicating it.
type AddItemInput struct {
	ProductID int
	Name      string
	Price     float64
	Image     string
	Size      string
	Color     string
	Quantity  int
}

// UpdateQuantityInput replaces the quantity of an existing line.
// A quantity of zero or less removes the line.
type UpdateQuantityInput struct {
	ProductID int
	Size      string
	Color     string
	Quantity  int
}

// RemoveItemInput identifies the line to remove.
type RemoveItemInput struct {
	ProductID int
	Size      string
	Color     string
}

// CartUsecase is the contract the delivery layer depends on for cart
// state. Every mutation returns the resulting snapshot so callers never
// observe intermediate state.
type CartUsecase interface {
	// Snapshot returns the current cart state.
	Snapshot(ctx context.Context) entity.CartSnapshot

	AddItem(ctx context.Context, input AddItemInput) entity.CartSnapshot
	UpdateQuantity(ctx context.Context, input UpdateQuantityInput) entity.CartSnapshot
	RemoveItem(ctx context.Context, input RemoveItemInput) entity.CartSnapshot
	Clear(ctx context.Context) entity.CartSnapshot

	// Subscribe registers a callback invoked after every state change.
	// The returned function removes the subscription.
	Subscribe(fn func(entity.CartSnapshot)) (unsubscribe func())

	// Restore loads the persisted cart, replacing the current state.
	// A missing or corrupt record leaves the cart empty.
	Restore(ctx context.Context) error
}
