package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catcare/internal/models/db_models"
	"catcare/internal/models/request_models"
	"catcare/internal/repositories"
)

// testEnv wires the service graph over an in-memory store.
type testEnv struct {
	store         repositories.KeyValueStore
	users         repositories.UserRepository
	pets          repositories.PetRepository
	calls         repositories.CallRepository
	sessionRepo   repositories.SessionRepository
	sessions      SessionServiceInterface
	subscriptions SubscriptionServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zap.NewNop()
	store := repositories.NewMemoryStore()
	users := repositories.NewUserRepository(store, log)
	pets := repositories.NewPetRepository(store, log)
	calls := repositories.NewCallRepository(store, log)
	sessionRepo := repositories.NewSessionRepository(store, log)
	seeder := repositories.NewDemoSeeder(users, pets, log)
	sessions := NewSessionService(users, pets, calls, sessionRepo, seeder, log)
	subscriptions := NewSubscriptionService(sessions, users, log)
	return &testEnv{
		store:         store,
		users:         users,
		pets:          pets,
		calls:         calls,
		sessionRepo:   sessionRepo,
		sessions:      sessions,
		subscriptions: subscriptions,
	}
}

func (e *testEnv) registerOwner(t *testing.T, ctx context.Context, username string) *db_models.User {
	t.Helper()
	user, err := e.sessions.Register(ctx, request_models.SignUpRequest{
		Username: username,
		Password: "secret123",
		Name:     "Test Owner",
		Type:     db_models.UserTypePetOwner,
	})
	require.NoError(t, err)
	return user
}

// newSeededAdvice builds a responder with pinned randomness and no real
// delays.
func newSeededAdvice(seed int64, policy EscalationPolicy) AdviceServiceInterface {
	return NewAdviceService(AdviceConfig{
		Policy: policy,
		Rand:   rand.New(rand.NewSource(seed)),
		Sleep: func(ctx context.Context, _ time.Duration) error {
			return ctx.Err()
		},
	}, zap.NewNop())
}
