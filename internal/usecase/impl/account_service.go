package impl

import (
	"context"
	"log/slog"
	"time"

	"threadz/config"
	"threadz/internal/domain/entity"
	"threadz/internal/domain/repository"
	"threadz/internal/errors"
	"threadz/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. It serves a
// fixed showcase data set after the configured backend latency; wiring
// a real order system in only requires replacing this implementation.
type accountService struct {
	catalog repository.ProductCatalog
	logger  *slog.Logger
	latency time.Duration
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Catalog repository.ProductCatalog
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAccountService creates the account data service.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		catalog: params.Catalog,
		logger:  params.Logger,
		latency: params.Config.Demo.SimulatedLatency,
	}
}

func (s *accountService) Orders(ctx context.Context, userID string) ([]entity.Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	return []entity.Order{
		{
			ID:     "ORD-2024-001",
			Date:   "2024-01-15",
			Status: entity.OrderDelivered,
			Total:  159.98,
			Items: []entity.OrderItem{
				{ID: 1, Name: "Urban Classic Hoodie", Price: 89.99, Quantity: 1, Size: "M", Color: "Black"},
				{ID: 2, Name: "Street Essential Tee", Price: 34.99, Quantity: 2, Size: "L", Color: "White"},
			},
			ShippingAddress: "123 Main St, New York, NY 10001",
			TrackingNumber:  "1Z999AA1234567890",
		},
		{
			ID:     "ORD-2024-002",
			Date:   "2024-01-20",
			Status: entity.OrderShipped,
			Total:  199.99,
			Items: []entity.OrderItem{
				{ID: 3, Name: "Distressed Denim Jacket", Price: 129.99, Quantity: 1, Size: "L", Color: "Blue"},
			},
			ShippingAddress: "123 Main St, New York, NY 10001",
			TrackingNumber:  "1Z999AA1234567891",
		},
		{
			ID:     "ORD-2024-003",
			Date:   "2024-01-25",
			Status: entity.OrderProcessing,
			Total:  79.99,
			Items: []entity.OrderItem{
				{ID: 4, Name: "Cargo Utility Pants", Price: 79.99, Quantity: 1, Size: "32", Color: "Olive"},
			},
			ShippingAddress: "123 Main St, New York, NY 10001",
		},
	}, nil
}

func (s *accountService) Addresses(ctx context.Context, userID string) ([]entity.Address, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	return []entity.Address{
		{
			ID:        "1",
			Type:      "home",
			FirstName: "John",
			LastName:  "Doe",
			Address1:  "123 Main Street",
			Address2:  "Apt 4B",
			City:      "New York",
			State:     "NY",
			ZipCode:   "10001",
			Country:   "United States",
			Phone:     "+1 (555) 123-4567",
			IsDefault: true,
		},
		{
			ID:        "2",
			Type:      "work",
			FirstName: "John",
			LastName:  "Doe",
			Company:   "Tech Corp",
			Address1:  "456 Business Ave",
			Address2:  "Suite 200",
			City:      "New York",
			State:     "NY",
			ZipCode:   "10002",
			Country:   "United States",
			Phone:     "+1 (555) 987-6543",
			IsDefault: false,
		},
	}, nil
}

func (s *accountService) PaymentMethods(ctx context.Context, userID string) ([]entity.PaymentMethod, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	return []entity.PaymentMethod{
		{
			ID:          "pm_1",
			Type:        "card",
			Brand:       "visa",
			Last4:       "4242",
			ExpiryMonth: 12,
			ExpiryYear:  2025,
			IsDefault:   true,
			HolderName:  "John Doe",
		},
		{
			ID:          "pm_2",
			Type:        "card",
			Brand:       "mastercard",
			Last4:       "5555",
			ExpiryMonth: 8,
			ExpiryYear:  2026,
			IsDefault:   false,
			HolderName:  "John Doe",
		},
	}, nil
}

// Wishlist resolves the saved product ids against the catalog so the
// entries never drift from the product records.
func (s *accountService) Wishlist(ctx context.Context, userID string) ([]entity.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	ids := []int{1, 5}
	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.catalog.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("Wishlist references unknown product",
				slog.Int("productId", id),
			)

			continue
		}
		products = append(products, *p)
	}

	return products, nil
}

func (s *accountService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "request aborted")
	case <-timer.C:
		return nil
	}
}
