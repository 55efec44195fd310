package repository

import "context"

// Mirror persists whole collections under a key, the way the client keeps its
// local key-value copy. Load reports false when the key has never been written.
type Mirror interface {
	Load(ctx context.Context, key string, dst interface{}) (bool, error)
	Save(ctx context.Context, key string, value interface{}) error
}
