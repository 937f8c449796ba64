package repositories

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
)

// SessionRepository owns the persisted current-user pointer. The pointer
// survives process restarts and is cleared on logout.
type SessionRepository interface {
	SetCurrentUser(ctx context.Context, user *db_models.User) error
	CurrentUser(ctx context.Context) *db_models.User
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store KeyValueStore
	log   *zap.Logger
}

func NewSessionRepository(store KeyValueStore, log *zap.Logger) SessionRepository {
	return &sessionRepository{store: store, log: log}
}

func (r *sessionRepository) SetCurrentUser(ctx context.Context, user *db_models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyCurrentUser, string(raw))
}

func (r *sessionRepository) CurrentUser(ctx context.Context) *db_models.User {
	raw, ok, err := r.store.Get(ctx, KeyCurrentUser)
	if err != nil {
		r.log.Warn("session pointer read failed", zap.Error(err))
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var user db_models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		r.log.Warn("session pointer payload corrupt", zap.Error(err))
		return nil
	}
	return &user
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, KeyCurrentUser)
}
