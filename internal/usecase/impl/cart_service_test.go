package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"threadz/internal/domain/entity"
	"threadz/internal/domain/repository"
	"threadz/internal/infra/persistence/memory"
	"threadz/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (usecase.CartUsecase, repository.KVStore) {
	t.Helper()

	store := memory.New()
	svc := NewCartService(CartServiceParams{
		Store:  store,
		Logger: slog.New(slog.DiscardHandler),
	})

	return svc, store
}

func hoodieInput(quantity int) usecase.AddItemInput {
	return usecase.AddItemInput{
		ProductID: 1,
		Name:      "Urban Classic Hoodie",
		Price:     89.99,
		Size:      "M",
		Color:     "Black",
		Quantity:  quantity,
	}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adding same line twice merges quantities", func(t *testing.T) {
		svc, _ := newCartService(t)

		svc.AddItem(ctx, hoodieInput(2))
		snapshot := svc.AddItem(ctx, hoodieInput(3))

		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 5, snapshot.Items[0].Quantity)
		assert.Equal(t, 5, snapshot.ItemCount)
	})

	t.Run("different size creates a separate line", func(t *testing.T) {
		svc, _ := newCartService(t)

		svc.AddItem(ctx, hoodieInput(1))
		other := hoodieInput(1)
		other.Size = "L"
		snapshot := svc.AddItem(ctx, other)

		assert.Len(t, snapshot.Items, 2)
	})

	t.Run("non-positive quantity clamps to one", func(t *testing.T) {
		svc, _ := newCartService(t)

		snapshot := svc.AddItem(ctx, hoodieInput(0))

		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 1, snapshot.Items[0].Quantity)
	})

	t.Run("totals follow price times quantity", func(t *testing.T) {
		svc, _ := newCartService(t)

		svc.AddItem(ctx, usecase.AddItemInput{
			ProductID: 2, Name: "Street Essential Tee", Price: 50.00, Size: "L", Color: "White", Quantity: 2,
		})
		snapshot := svc.AddItem(ctx, usecase.AddItemInput{
			ProductID: 2, Name: "Street Essential Tee", Price: 50.00, Size: "L", Color: "White", Quantity: 1,
		})

		assert.InDelta(t, 150.00, snapshot.Total, 0.001)
		assert.Equal(t, 3, snapshot.ItemCount)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces quantity", func(t *testing.T) {
		svc, _ := newCartService(t)
		svc.AddItem(ctx, hoodieInput(2))

		snapshot := svc.UpdateQuantity(ctx, usecase.UpdateQuantityInput{
			ProductID: 1, Size: "M", Color: "Black", Quantity: 7,
		})

		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 7, snapshot.Items[0].Quantity)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		svc, _ := newCartService(t)
		svc.AddItem(ctx, hoodieInput(2))

		snapshot := svc.UpdateQuantity(ctx, usecase.UpdateQuantityInput{
			ProductID: 1, Size: "M", Color: "Black", Quantity: 0,
		})

		assert.Empty(t, snapshot.Items)
		assert.Zero(t, snapshot.ItemCount)
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		svc, _ := newCartService(t)
		svc.AddItem(ctx, hoodieInput(2))

		snapshot := svc.UpdateQuantity(ctx, usecase.UpdateQuantityInput{
			ProductID: 99, Size: "M", Color: "Black", Quantity: 5,
		})

		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 2, snapshot.Items[0].Quantity)
	})
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("remove deletes only the matching line", func(t *testing.T) {
		svc, _ := newCartService(t)
		svc.AddItem(ctx, hoodieInput(1))
		other := hoodieInput(1)
		other.Color = "White"
		svc.AddItem(ctx, other)

		snapshot := svc.RemoveItem(ctx, usecase.RemoveItemInput{
			ProductID: 1, Size: "M", Color: "Black",
		})

		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, "White", snapshot.Items[0].Color)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		svc, _ := newCartService(t)
		svc.AddItem(ctx, hoodieInput(3))

		snapshot := svc.Clear(ctx)

		assert.Empty(t, snapshot.Items)
		assert.Zero(t, snapshot.Total)
		assert.Zero(t, snapshot.ItemCount)
	})
}

func TestCartService_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("mutations reach storage", func(t *testing.T) {
		svc, store := newCartService(t)

		svc.AddItem(ctx, hoodieInput(2))

		require.Eventually(t, func() bool {
			data, err := store.Get(ctx, CartStorageKey)
			if err != nil {
				return false
			}
			var items []entity.CartItem

			return json.Unmarshal(data, &items) == nil && len(items) == 1 && items[0].Quantity == 2
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("restore round-trips the cart", func(t *testing.T) {
		first, store := newCartService(t)
		first.AddItem(ctx, hoodieInput(4))

		require.Eventually(t, func() bool {
			_, err := store.Get(ctx, CartStorageKey)

			return err == nil
		}, time.Second, 10*time.Millisecond)

		second := NewCartService(CartServiceParams{
			Store:  store,
			Logger: slog.New(slog.DiscardHandler),
		})
		require.NoError(t, second.Restore(ctx))

		snapshot := second.Snapshot(ctx)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 4, snapshot.Items[0].Quantity)
		assert.InDelta(t, 4*89.99, snapshot.Total, 0.001)
	})

	t.Run("restore with no record leaves the cart empty", func(t *testing.T) {
		svc, _ := newCartService(t)

		require.NoError(t, svc.Restore(ctx))
		assert.Empty(t, svc.Snapshot(ctx).Items)
	})

	t.Run("restore with corrupt record leaves the cart empty", func(t *testing.T) {
		svc, store := newCartService(t)
		require.NoError(t, store.Set(ctx, CartStorageKey, []byte("not json")))

		require.NoError(t, svc.Restore(ctx))
		assert.Empty(t, svc.Snapshot(ctx).Items)
	})
}

func TestCartService_Subscribe(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartService(t)

	var seen []entity.CartSnapshot
	unsubscribe := svc.Subscribe(func(s entity.CartSnapshot) {
		seen = append(seen, s)
	})

	svc.AddItem(ctx, hoodieInput(1))
	require.Len(t, seen, 1)
	assert.Equal(t, 1, seen[0].ItemCount)

	unsubscribe()
	svc.AddItem(ctx, hoodieInput(1))
	assert.Len(t, seen, 1)
}
