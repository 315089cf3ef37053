package repository

import "context"

// Stable keys of the persisted collections.
const (
	KeyUsers     = "users"
	KeyDonations = "donations"
	KeyRequests  = "requests"
)

// KV is the persistence collaborator of the entity store. The store loads
// each key once at construction and writes the full collection back after
// every mutation. Load returns found=false for a key that was never saved.
type KV interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}
