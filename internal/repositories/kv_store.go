package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catcare/internal/models/db_models"
	"catcare/pkg/utils"
)

// Well-known storage keys. Every persisted collection lives as a JSON string
// under one of these.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "current_user"
	KeyPets        = "pets"
	KeyDoctorCalls = "doctor_calls"
)

// StorageKeys lists every key the module writes, in a fixed order, for bulk
// removal.
var StorageKeys = []string{KeyUsers, KeyCurrentUser, KeyPets, KeyDoctorCalls}

// KeyValueStore is the port over the device's opaque persistent storage.
// Semantics are best effort, last write wins; there is no transactionality
// across keys. Backend failures surface as utils.ErrStorageUnavailable.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	MultiRemove(ctx context.Context, keys []string) error
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore adapts a gorm connection (sqlite in production) to the
// key-value port.
func NewGormStore(db *gorm.DB) KeyValueStore {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry db_models.KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get %q: %v", utils.ErrStorageUnavailable, key, err)
	}
	return entry.Value, true, nil
}

func (s *gormStore) Set(ctx context.Context, key, value string) error {
	entry := db_models.KVEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: set %q: %v", utils.ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *gormStore) Remove(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&db_models.KVEntry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("%w: remove %q: %v", utils.ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *gormStore) MultiRemove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Delete(&db_models.KVEntry{}, "key IN ?", keys).Error
	if err != nil {
		return fmt.Errorf("%w: multi-remove: %v", utils.ErrStorageUnavailable, err)
	}
	return nil
}

// ClearAllData removes every well-known key in one sweep.
func ClearAllData(ctx context.Context, store KeyValueStore) error {
	return store.MultiRemove(ctx, StorageKeys)
}
