// Package kv provides the durable key-value store backing the application:
// each key holds one serialized record or list (current user, farm profile,
// registered-user table).
package kv

import "context"

// Repository is a durable key→bytes store. Get returns nil (no error) for an
// absent key; Set upserts.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
