package contracts

import "context"

// KeyValueStore is the durable client-local store shared by every page of one
// client. Writes are last-writer-wins.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
