package repositories

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
)

type UserRepository interface {
	// Insert appends the user to the collection. Username uniqueness is the
	// caller's responsibility.
	Insert(ctx context.Context, user *db_models.User) error
	List(ctx context.Context) []db_models.User
	FindByUsername(ctx context.Context, username string) *db_models.User
	FindByID(ctx context.Context, id string) *db_models.User
	// Update replaces the record with the same ID. When the updated record is
	// the current session user, the persisted session pointer is refreshed so
	// both copies stay consistent.
	Update(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	store KeyValueStore
	log   *zap.Logger
}

func NewUserRepository(store KeyValueStore, log *zap.Logger) UserRepository {
	return &userRepository{store: store, log: log}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	users := loadCollection[db_models.User](ctx, r.store, KeyUsers, r.log)
	users = append(users, *user)
	return storeCollection(ctx, r.store, KeyUsers, users)
}

func (r *userRepository) List(ctx context.Context) []db_models.User {
	return loadCollection[db_models.User](ctx, r.store, KeyUsers, r.log)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) *db_models.User {
	for _, user := range r.List(ctx) {
		if user.Username == username {
			return &user
		}
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) *db_models.User {
	for _, user := range r.List(ctx) {
		if user.ID == id {
			return &user
		}
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	users := r.List(ctx)
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			break
		}
	}
	if err := storeCollection(ctx, r.store, KeyUsers, users); err != nil {
		return err
	}
	return r.refreshSessionPointer(ctx, user)
}

// refreshSessionPointer rewrites the current_user key when it points at the
// record that was just updated.
func (r *userRepository) refreshSessionPointer(ctx context.Context, user *db_models.User) error {
	raw, ok, err := r.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		r.log.Warn("session pointer read failed during update", zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var current db_models.User
	if err := json.Unmarshal([]byte(raw), &current); err != nil {
		r.log.Warn("session pointer payload corrupt", zap.Error(err))
		return nil
	}
	if current.ID != user.ID {
		return nil
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyCurrentUser, string(encoded))
}
