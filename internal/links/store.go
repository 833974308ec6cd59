package links

import "context"

// Store is the key-value backend holding serialized link records.
// Keys are normalized shortcuts; callers normalize before touching it.
type Store interface {
	// Get returns the stored value for a key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores a value under a key, overwriting any existing value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List enumerates all stored keys in the backend's native order.
	List(ctx context.Context) ([]string, error)
}
