// File: internal/repository/kv/memory.go
package kv

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/traza-ai/trainhub/internal/domain"
)

// MemoryKVRepository is an in-memory KVRepository used in tests and in
// ephemeral deployments where nothing should outlive the process.
type MemoryKVRepository struct {
	mu      sync.RWMutex
	entries map[uint]map[string]string
	// FailSet, when > 0, makes that many subsequent Set calls fail. Lets
	// tests exercise the quota-exhaustion retry paths.
	FailSet int
}

func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{entries: make(map[uint]map[string]string)}
}

var errSimulatedWrite = &writeError{}

type writeError struct{}

func (e *writeError) Error() string { return "simulated write failure" }

func (r *MemoryKVRepository) Get(_ context.Context, userID uint, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.entries[userID][key]; ok {
		return v, nil
	}
	return "", ErrNotFound
}

func (r *MemoryKVRepository) Set(_ context.Context, userID uint, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailSet > 0 {
		r.FailSet--
		return errSimulatedWrite
	}
	if r.entries[userID] == nil {
		r.entries[userID] = make(map[string]string)
	}
	r.entries[userID][key] = value
	return nil
}

func (r *MemoryKVRepository) Delete(_ context.Context, userID uint, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries[userID], key)
	return nil
}

func (r *MemoryKVRepository) Exists(_ context.Context, userID uint, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[userID][key]
	return ok, nil
}

func (r *MemoryKVRepository) FindByKeyPrefix(_ context.Context, prefix string) ([]domain.KVEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.KVEntry
	for userID, keys := range r.entries {
		for k, v := range keys {
			if strings.HasPrefix(k, prefix) {
				out = append(out, domain.KVEntry{UserID: userID, Key: k, Value: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}
