// File: internal/repository/kv/gorm_kv_repository.go
package kv

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/traza-ai/trainhub/internal/domain"
)

type gormKVRepository struct {
	db *gorm.DB
}

// NewKVRepository creates a GORM-backed key-value repository.
func NewKVRepository(db *gorm.DB) KVRepository {
	return &gormKVRepository{db: db}
}

func (r *gormKVRepository) Get(ctx context.Context, userID uint, key string) (string, error) {
	if userID == 0 || key == "" {
		return "", errors.New("invalid user ID or key")
	}

	var entry domain.KVEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		log.Printf("[KVRepository] Database error reading key %q for user ID %d: %v", key, userID, err)
		return "", errors.New("database error reading entry")
	}
	return entry.Value, nil
}

func (r *gormKVRepository) Set(ctx context.Context, userID uint, key, value string) error {
	if userID == 0 || key == "" {
		return errors.New("invalid user ID or key")
	}

	entry := domain.KVEntry{UserID: userID, Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		log.Printf("[KVRepository] Database error writing key %q for user ID %d: %v", key, userID, err)
		return errors.New("database error writing entry")
	}
	return nil
}

func (r *gormKVRepository) Delete(ctx context.Context, userID uint, key string) error {
	if userID == 0 || key == "" {
		return errors.New("invalid user ID or key")
	}

	// Deleting an absent key is a no-op, not an error.
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&domain.KVEntry{}).Error
	if err != nil {
		log.Printf("[KVRepository] Database error deleting key %q for user ID %d: %v", key, userID, err)
		return errors.New("database error deleting entry")
	}
	return nil
}

func (r *gormKVRepository) Exists(ctx context.Context, userID uint, key string) (bool, error) {
	if userID == 0 || key == "" {
		return false, errors.New("invalid user ID or key")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.KVEntry{}).
		Where("user_id = ? AND key = ?", userID, key).
		Count(&count).Error
	if err != nil {
		log.Printf("[KVRepository] Database error checking key %q for user ID %d: %v", key, userID, err)
		return false, errors.New("database error checking entry")
	}
	return count > 0, nil
}

func (r *gormKVRepository) FindByKeyPrefix(ctx context.Context, prefix string) ([]domain.KVEntry, error) {
	if prefix == "" {
		return nil, errors.New("prefix is required")
	}

	var entries []domain.KVEntry
	err := r.db.WithContext(ctx).
		Where("key LIKE ?", prefix+"%").
		Order("user_id ASC, key ASC").
		Find(&entries).Error
	if err != nil {
		log.Printf("[KVRepository] Database error scanning prefix %q: %v", prefix, err)
		return nil, errors.New("database error scanning entries")
	}
	return entries, nil
}
