// File: internal/domain/kventry.go
package domain

import "time"

// KVEntry is one user-scoped storage slot: a system-prompt override, a
// context note, a suggested-prompts list, a message history, an archive
// list, the active-domain name, or the cached generated dataset. Each
// logical slot has exactly one writer role; ownership is enforced by the
// store interfaces layered on top, not here.
type KVEntry struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"uniqueIndex:idx_user_key;not null"`
	Key       string `gorm:"uniqueIndex:idx_user_key;not null"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
