// File: internal/store/read_json.go
package store

import (
	"context"
	"encoding/json"

	"github.com/traza-ai/trainhub/internal/repository/kv"
)

// readJSON reads a slot and decodes it into T, applying an optional
// validator. Absence, storage failure, unparseable JSON and validation
// failure are all equivalent to "absent": the second return is false and no
// error escapes. Every silent-corruption read path in the stores goes
// through here so the recovery rule is encoded once.
func readJSON[T any](ctx context.Context, repo kv.KVRepository, userID uint, key string, validate func(*T) error) (*T, bool) {
	raw, err := repo.Get(ctx, userID, key)
	if err != nil || raw == "" {
		return nil, false
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, false
	}
	if validate != nil {
		if err := validate(&value); err != nil {
			return nil, false
		}
	}
	return &value, true
}
