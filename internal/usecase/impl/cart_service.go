// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"threadz/internal/domain/entity"
	"threadz/internal/domain/repository"
	"threadz/internal/errors"
	"threadz/internal/usecase"

	"go.uber.org/fx"
)

// CartStorageKey is the persisted cart record's key.
const CartStorageKey = "urbanthreadz-cart"

// cartAction is the closed set of cart transitions. Each variant is a
// pure function from the current line slice to the next one; cartService
// serializes their application.
type cartAction interface {
	apply(items []entity.CartItem) []entity.CartItem
}

type addItemAction struct {
	item entity.CartItem
}

func (a addItemAction) apply(items []entity.CartItem) []entity.CartItem {
	next := make([]entity.CartItem, len(items))
	copy(next, items)

	key := a.item.Key()
	for i := range next {
		if next[i].Key() == key {
			next[i].Quantity += a.item.Quantity

			return next
		}
	}

	return append(next, a.item)
}

type updateQuantityAction struct {
	key      entity.LineKey
	quantity int
}

func (a updateQuantityAction) apply(items []entity.CartItem) []entity.CartItem {
	if a.quantity <= 0 {
		return removeItemAction{key: a.key}.apply(items)
	}

	next := make([]entity.CartItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].Key() == a.key {
			next[i].Quantity = a.quantity
		}
	}

	return next
}

type removeItemAction struct {
	key entity.LineKey
}

func (a removeItemAction) apply(items []entity.CartItem) []entity.CartItem {
	next := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		if item.Key() != a.key {
			next = append(next, item)
		}
	}

	return next
}

type clearCartAction struct{}

func (clearCartAction) apply([]entity.CartItem) []entity.CartItem {
	return nil
}

type loadCartAction struct {
	items []entity.CartItem
}

func (a loadCartAction) apply([]entity.CartItem) []entity.CartItem {
	return a.items
}

// cartService implements the CartUsecase interface. State changes are
// serialized under mu; persistence happens asynchronously so dispatch
// never blocks on storage.
type cartService struct {
	store  repository.KVStore
	logger *slog.Logger

	mu    sync.Mutex
	items []entity.CartItem

	subMu   sync.Mutex
	subs    map[int]func(entity.CartSnapshot)
	nextSub int

	// persistMu serializes writers so the newest snapshot always lands last.
	persistMu sync.Mutex
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store  repository.KVStore
	Logger *slog.Logger
}

// NewCartService creates the cart state container.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:  params.Store,
		logger: params.Logger,
		subs:   make(map[int]func(entity.CartSnapshot)),
	}
}

// persistedCart is the stored record shape, shared with what the
// storefront wrote historically: a bare array of line items.
type persistedCart []entity.CartItem

func (s *cartService) Snapshot(_ context.Context) entity.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *cartService) AddItem(ctx context.Context, input usecase.AddItemInput) entity.CartSnapshot {
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return s.dispatch(ctx, addItemAction{item: entity.CartItem{
		ProductID: input.ProductID,
		Name:      input.Name,
		Price:     input.Price,
		Image:     input.Image,
		Size:      input.Size,
		Color:     input.Color,
		Quantity:  quantity,
	}})
}

func (s *cartService) UpdateQuantity(ctx context.Context, input usecase.UpdateQuantityInput) entity.CartSnapshot {
	return s.dispatch(ctx, updateQuantityAction{
		key:      entity.LineKey{ProductID: input.ProductID, Size: input.Size, Color: input.Color},
		quantity: input.Quantity,
	})
}

func (s *cartService) RemoveItem(ctx context.Context, input usecase.RemoveItemInput) entity.CartSnapshot {
	return s.dispatch(ctx, removeItemAction{
		key: entity.LineKey{ProductID: input.ProductID, Size: input.Size, Color: input.Color},
	})
}

func (s *cartService) Clear(ctx context.Context) entity.CartSnapshot {
	return s.dispatch(ctx, clearCartAction{})
}

func (s *cartService) Subscribe(fn func(entity.CartSnapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *cartService) Restore(ctx context.Context) error {
	data, err := s.store.Get(ctx, CartStorageKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil
		}
		s.logger.Warn("Failed to read persisted cart, starting empty",
			slog.String("error", err.Error()),
		)

		return nil
	}

	var items persistedCart
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("Persisted cart is corrupt, starting empty",
			slog.String("error", err.Error()),
		)

		return nil
	}

	s.dispatch(ctx, loadCartAction{items: items})

	return nil
}

// dispatch applies the action under the state lock, then notifies
// subscribers and schedules persistence with the resulting snapshot.
func (s *cartService) dispatch(ctx context.Context, action cartAction) entity.CartSnapshot {
	s.mu.Lock()
	s.items = action.apply(s.items)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	s.persistAsync(ctx)

	return snapshot
}

func (s *cartService) snapshotLocked() entity.CartSnapshot {
	items := make([]entity.CartItem, len(s.items))
	copy(items, s.items)
	total, count := entity.ComputeCartTotals(items)

	return entity.CartSnapshot{Items: items, Total: total, ItemCount: count}
}

func (s *cartService) notify(snapshot entity.CartSnapshot) {
	s.subMu.Lock()
	fns := make([]func(entity.CartSnapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// persistAsync writes the cart in the background. The goroutine re-reads
// the state after acquiring persistMu, so overlapping writers always
// leave the newest state in storage. Failures are logged, never surfaced.
func (s *cartService) persistAsync(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	go func() {
		s.persistMu.Lock()
		defer s.persistMu.Unlock()

		s.mu.Lock()
		items := make(persistedCart, len(s.items))
		copy(items, s.items)
		s.mu.Unlock()

		data, err := json.Marshal(items)
		if err != nil {
			s.logger.Error("Failed to encode cart for persistence",
				slog.String("error", err.Error()),
			)

			return
		}

		if err := s.store.Set(ctx, CartStorageKey, data); err != nil {
			s.logger.Error("Failed to persist cart",
				slog.String("error", err.Error()),
			)
		}
	}()
}
