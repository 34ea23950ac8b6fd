package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is the durable string key/value substrate backing the
// client's record cache and pending queue. Values are opaque strings;
// serialization is the caller's concern.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key entirely. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key string) error
}
