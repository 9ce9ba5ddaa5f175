package usecase

import (
	"context"

	"threadz/internal/domain/entity"
)

// AccountUsecase exposes a shopper's account data: order history,
// saved addresses, payment methods and wishlist. All operations are
// scoped to the authenticated user.
type AccountUsecase interface {
	Orders(ctx context.Context, userID string) ([]entity.Order, error)
	Addresses(ctx context.Context, userID string) ([]entity.Address, error)
	PaymentMethods(ctx context.Context, userID string) ([]entity.PaymentMethod, error)
	Wishlist(ctx context.Context, userID string) ([]entity.Product, error)
}
