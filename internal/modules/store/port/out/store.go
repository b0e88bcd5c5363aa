package out

import "context"

// KeyValueStore persists opaque values under string keys. Load returns
// apperrors.ErrNotFound when key has never been saved.
type KeyValueStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
