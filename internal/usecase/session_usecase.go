package usecase

import (
	"context"

	"threadz/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a shopper to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries a partial profile update. Nil fields are
// left unchanged.
type UpdateUserInput struct {
	Name   *string
	Email  *string
	Avatar *string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated user and a bearer token for
// subsequent requests.
type LoginOutput struct {
	User        *entity.User
	AccessToken string
}

// SessionUsecase is the contract the delivery layer depends on for
// session state.
type SessionUsecase interface {
	// Snapshot returns the current session state.
	Snapshot(ctx context.Context) entity.SessionSnapshot

	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input RegisterInput) (*LoginOutput, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, input UpdateUserInput) (*entity.User, error)

	// Subscribe registers a callback invoked after every state change.
	// The returned function removes the subscription.
	Subscribe(fn func(entity.SessionSnapshot)) (unsubscribe func())

	// Restore loads the persisted user, resolving the initial loading
	// state to authenticated or anonymous.
	Restore(ctx context.Context) error
}
