// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value has been stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable string-keyed slot the state containers mirror
// themselves into (the browser local-storage analog). Implementations must be
// safe for concurrent use; values are opaque bytes owned by the caller.
type KVStore interface {
	// Get retrieves the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
