// Package storage provides the client's local key-value stores. Two
// implementations with different lifetimes back the booking and session
// state: a durable sqlite-backed store that survives restarts, and an
// ephemeral in-memory store that lives only as long as the process.
package storage

import "context"

// Well-known keys.
const (
	KeyToken        = "token"
	KeyUser         = "user"
	KeyBookingDraft = "booking_draft"
)

// Store is a string-keyed blob store. Get returns (nil, nil) when the key
// is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
