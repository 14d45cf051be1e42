package kv

import (
	"context"
	"errors"

	"github.com/traza-ai/trainhub/internal/domain"
)

// ErrNotFound is returned when no value is stored under a key. Callers in
// the store layer treat it as "no override" and fall back to defaults.
var ErrNotFound = errors.New("kv entry not found")

// KVRepository handles user-scoped key-value slots. Every logical slot
// (prompt override, context note, message history, archive list, cached
// dataset) lives under exactly one key; serialization format is owned by
// the store layered on top.
type KVRepository interface {
	Get(ctx context.Context, userID uint, key string) (string, error)
	Set(ctx context.Context, userID uint, key, value string) error
	Delete(ctx context.Context, userID uint, key string) error
	Exists(ctx context.Context, userID uint, key string) (bool, error)
	// FindByKeyPrefix returns every entry whose key starts with prefix,
	// across all users. Used by the startup migration scan.
	FindByKeyPrefix(ctx context.Context, prefix string) ([]domain.KVEntry, error)
}
