package storage

import "context"

// Backend is the persistence contract of the session store.
//
// Get reports ok=false with a nil error when the key is absent. Remove of a
// missing key is not an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, keys ...string) error
}
