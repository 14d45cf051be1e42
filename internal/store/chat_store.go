// File: internal/store/chat_store.go
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/repository/kv"
	"github.com/traza-ai/trainhub/internal/services"
)

const (
	// MaxArchives bounds the per-type archive list; the oldest entry is
	// evicted first.
	MaxArchives = 5
	// PreviewLength caps the archive preview taken from the first user
	// message.
	PreviewLength = 80
)

// ChatStore persists per-chat-type message histories and archives of
// cleared conversations. All failures here are soft: storage problems and
// corrupt data degrade to "nothing persisted / nothing restored" and are
// never surfaced to the user.
type ChatStore struct {
	kv     kv.KVRepository
	logger services.Logger
}

func NewChatStore(kvRepo kv.KVRepository, logger services.Logger) *ChatStore {
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &ChatStore{kv: kvRepo, logger: logger}
}

// SaveMessages writes the full message array for a chat type. Called only
// at settle points (stream completed or errored), never per token, to bound
// write volume.
func (s *ChatStore) SaveMessages(ctx context.Context, userID uint, t domain.ChatType, messages []domain.UIMessage) {
	raw, err := json.Marshal(messages)
	if err != nil {
		s.logger.Warn("could not serialize chat history", "type", t, "error", err)
		return
	}
	if err := s.kv.Set(ctx, userID, chatKey(t), string(raw)); err != nil {
		s.logger.Warn("could not persist chat history", "type", t, "error", err)
	}
}

// LoadMessages restores the stored history for a chat type. Absent,
// corrupt, or empty slots all restore to an empty session.
func (s *ChatStore) LoadMessages(ctx context.Context, userID uint, t domain.ChatType) []domain.UIMessage {
	messages, ok := readJSON[[]domain.UIMessage](ctx, s.kv, userID, chatKey(t), nil)
	if !ok || len(*messages) == 0 {
		return nil
	}
	return *messages
}

// ClearMessages deletes the live history slot for a chat type.
func (s *ChatStore) ClearMessages(ctx context.Context, userID uint, t domain.ChatType) {
	if err := s.kv.Delete(ctx, userID, chatKey(t)); err != nil {
		s.logger.Warn("could not clear chat history", "type", t, "error", err)
	}
}

// MigrateOldChatData runs once at application start. It scans every stored
// history; a slot whose first message uses the obsolete flat string content
// format is renamed to a backup key and the live slot cleared, so sessions
// start empty instead of rendering unparseable legacy data. Slots that do
// not parse at all are deleted outright since there is nothing worth
// backing up.
func (s *ChatStore) MigrateOldChatData(ctx context.Context) {
	entries, err := s.kv.FindByKeyPrefix(ctx, chatKeyPrefix)
	if err != nil {
		s.logger.Warn("chat migration scan failed", "error", err)
		return
	}

	for _, entry := range entries {
		typeName := entry.Key[len(chatKeyPrefix):]
		if !domain.IsValidChatType(typeName) {
			continue
		}
		t := domain.ChatType(typeName)

		var raw []json.RawMessage
		if err := json.Unmarshal([]byte(entry.Value), &raw); err != nil {
			// Never parseable, nothing to preserve.
			if err := s.kv.Delete(ctx, entry.UserID, entry.Key); err != nil {
				s.logger.Warn("could not delete corrupt chat slot", "key", entry.Key, "error", err)
			}
			continue
		}
		if len(raw) == 0 {
			continue
		}

		if domain.IsLegacyMessage(raw[0]) {
			if err := s.kv.Set(ctx, entry.UserID, backupKey(t), entry.Value); err != nil {
				s.logger.Warn("could not back up legacy chat data", "key", entry.Key, "error", err)
				continue
			}
			if err := s.kv.Delete(ctx, entry.UserID, entry.Key); err != nil {
				s.logger.Warn("could not clear legacy chat slot", "key", entry.Key, "error", err)
				continue
			}
			s.logger.Info("backed up legacy chat data", "user_id", entry.UserID, "type", typeName)
		}
	}
}

// ArchiveChat appends a cleared conversation to the chat type's archive
// list, evicting the oldest entry beyond MaxArchives. A write failure
// (storage quota) triggers one retry after evicting one more entry; a
// second failure is swallowed.
func (s *ChatStore) ArchiveChat(ctx context.Context, userID uint, t domain.ChatType, messages []domain.UIMessage) {
	if len(messages) == 0 {
		return
	}

	archives := s.GetArchives(ctx, userID, t)

	preview := "..."
	for _, m := range messages {
		if m.Role == domain.RoleUser {
			if text := m.Text(); text != "" {
				preview = truncate(text, PreviewLength)
			}
			break
		}
	}

	archives = append(archives, domain.ChatArchive{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UnixMilli(),
		Messages:     messages,
		MessageCount: len(messages),
		Preview:      preview,
	})
	for len(archives) > MaxArchives {
		archives = archives[1:]
	}

	if err := s.writeArchives(ctx, userID, t, archives); err != nil {
		// Evict one more and retry once before giving up.
		if len(archives) > 0 {
			archives = archives[1:]
		}
		if err := s.writeArchives(ctx, userID, t, archives); err != nil {
			s.logger.Warn("archive write failed twice, dropping archive", "type", t, "error", err)
		}
	}
}

// GetArchives returns the archive list in oldest-appended-first order.
// Malformed storage yields an empty list.
func (s *ChatStore) GetArchives(ctx context.Context, userID uint, t domain.ChatType) []domain.ChatArchive {
	archives, ok := readJSON[[]domain.ChatArchive](ctx, s.kv, userID, archiveKey(t), nil)
	if !ok {
		return []domain.ChatArchive{}
	}
	return *archives
}

// RestoreArchive returns the archived messages for an id, or nil when the
// id is unknown.
func (s *ChatStore) RestoreArchive(ctx context.Context, userID uint, t domain.ChatType, id string) []domain.UIMessage {
	for _, a := range s.GetArchives(ctx, userID, t) {
		if a.ID == id {
			return a.Messages
		}
	}
	return nil
}

// DeleteArchive removes the entry with the given id; an absent id is a
// silent no-op.
func (s *ChatStore) DeleteArchive(ctx context.Context, userID uint, t domain.ChatType, id string) {
	archives := s.GetArchives(ctx, userID, t)
	kept := archives[:0]
	for _, a := range archives {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if err := s.writeArchives(ctx, userID, t, kept); err != nil {
		s.logger.Warn("could not persist archive deletion", "type", t, "error", err)
	}
}

func (s *ChatStore) writeArchives(ctx context.Context, userID uint, t domain.ChatType, archives []domain.ChatArchive) error {
	raw, err := json.Marshal(archives)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, userID, archiveKey(t), string(raw))
}
