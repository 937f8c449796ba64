package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catcare/internal/models/db_models"
)

func newUserRepo() (UserRepository, SessionRepository, KeyValueStore) {
	store := NewMemoryStore()
	log := zap.NewNop()
	return NewUserRepository(store, log), NewSessionRepository(store, log), store
}

func sampleUser(id, username string) *db_models.User {
	expires := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &db_models.User{
		ID:           id,
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Name:         "Sample User",
		Type:         db_models.UserTypePetOwner,
		CreatedAt:    time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC),
		Subscription: &db_models.Subscription{
			Type:      db_models.SubscriptionMonthly,
			ExpiresAt: &expires,
			IsActive:  true,
		},
		Usage: &db_models.Usage{
			AIRequests:           4,
			FreeRequestsUsed:     4,
			LastFreeRequestReset: time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC),
			HasUsedFirstConsult:  true,
		},
	}
}

func TestUserRoundTripPreservesStructure(t *testing.T) {
	ctx := context.Background()
	users, _, _ := newUserRepo()

	original := sampleUser("u-1", "alice")
	require.NoError(t, users.Insert(ctx, original))

	got := users.List(ctx)
	require.Len(t, got, 1)
	require.Equal(t, *original, got[0])
}

func TestFindByUsername(t *testing.T) {
	ctx := context.Background()
	users, _, _ := newUserRepo()

	require.NoError(t, users.Insert(ctx, sampleUser("u-1", "alice")))
	require.NoError(t, users.Insert(ctx, sampleUser("u-2", "bob")))

	found := users.FindByUsername(ctx, "bob")
	require.NotNil(t, found)
	require.Equal(t, "u-2", found.ID)

	require.Nil(t, users.FindByUsername(ctx, "carol"))
}

func TestUpdateReplacesRecordInPlace(t *testing.T) {
	ctx := context.Background()
	users, _, _ := newUserRepo()

	require.NoError(t, users.Insert(ctx, sampleUser("u-1", "alice")))
	require.NoError(t, users.Insert(ctx, sampleUser("u-2", "bob")))

	updated := sampleUser("u-2", "bob")
	updated.Name = "Bob Renamed"
	require.NoError(t, users.Update(ctx, updated))

	got := users.List(ctx)
	require.Len(t, got, 2)
	require.Equal(t, "Bob Renamed", got[1].Name)
}

func TestUpdateRefreshesSessionPointer(t *testing.T) {
	ctx := context.Background()
	users, sessions, _ := newUserRepo()

	user := sampleUser("u-1", "alice")
	require.NoError(t, users.Insert(ctx, user))
	require.NoError(t, sessions.SetCurrentUser(ctx, user))

	updated := sampleUser("u-1", "alice")
	updated.Usage.FreeRequestsUsed = 9
	require.NoError(t, users.Update(ctx, updated))

	current := sessions.CurrentUser(ctx)
	require.NotNil(t, current)
	require.Equal(t, 9, current.Usage.FreeRequestsUsed)
}

func TestUpdateLeavesForeignSessionPointerAlone(t *testing.T) {
	ctx := context.Background()
	users, sessions, _ := newUserRepo()

	alice := sampleUser("u-1", "alice")
	bob := sampleUser("u-2", "bob")
	require.NoError(t, users.Insert(ctx, alice))
	require.NoError(t, users.Insert(ctx, bob))
	require.NoError(t, sessions.SetCurrentUser(ctx, alice))

	bob.Name = "Bob Renamed"
	require.NoError(t, users.Update(ctx, bob))

	current := sessions.CurrentUser(ctx)
	require.NotNil(t, current)
	require.Equal(t, "u-1", current.ID)
	require.Equal(t, "Sample User", current.Name)
}

func TestCorruptCollectionFailsSoft(t *testing.T) {
	ctx := context.Background()
	users, _, store := newUserRepo()

	require.NoError(t, store.Set(ctx, KeyUsers, "{definitely not json"))
	require.Empty(t, users.List(ctx))
	require.Nil(t, users.FindByUsername(ctx, "anyone"))
}
