package service

import "context"

// KeyValueStorage is durable string storage that survives restarts.
type KeyValueStorage interface {
	// GetItem returns the stored value; found is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)

	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes the key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
