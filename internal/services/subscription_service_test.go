package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"catcare/internal/models/db_models"
	"catcare/pkg/utils"
)

func TestStatusWithoutSessionIsUntouchedFreeTier(t *testing.T) {
	env := newTestEnv(t)

	status := env.subscriptions.Status()
	require.Equal(t, db_models.SubscriptionFree, status.SubscriptionType)
	require.False(t, status.IsSubscribed)
	require.False(t, status.CanMakeAIRequest)
	require.Equal(t, FreeRequestQuota, status.RemainingFreeRequests)
}

func TestMakeAIRequestWithoutSession(t *testing.T) {
	env := newTestEnv(t)
	require.ErrorIs(t, env.subscriptions.MakeAIRequest(context.Background()), utils.ErrNoActiveSession)
}

func TestFreeQuotaConsumesDownToZero(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerOwner(t, ctx, "owner")

	for i := 0; i < FreeRequestQuota; i++ {
		require.NoError(t, env.subscriptions.MakeAIRequest(ctx))
		require.Equal(t, FreeRequestQuota-i-1, env.subscriptions.Status().RemainingFreeRequests)
	}

	require.ErrorIs(t, env.subscriptions.MakeAIRequest(ctx), utils.ErrQuotaExhausted)

	// The failed request must not mutate usage.
	status := env.subscriptions.Status()
	require.Zero(t, status.RemainingFreeRequests)
	require.False(t, status.CanMakeAIRequest)
	require.Equal(t, FreeRequestQuota, env.sessions.CurrentUser().Usage.FreeRequestsUsed)
}

func TestSubscribedRequestsDoNotConsumeQuota(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerOwner(t, ctx, "owner")

	require.NoError(t, env.subscriptions.MakeAIRequest(ctx))
	require.NoError(t, env.subscriptions.UpgradeSubscription(ctx, db_models.SubscriptionMonthly))

	status := env.subscriptions.Status()
	require.True(t, status.IsSubscribed)
	require.True(t, status.CanMakeAIRequest)
	require.Equal(t, db_models.SubscriptionMonthly, status.SubscriptionType)

	before := status.RemainingFreeRequests
	require.NoError(t, env.subscriptions.MakeAIRequest(ctx))
	require.Equal(t, before, env.subscriptions.Status().RemainingFreeRequests)
}

func TestUpgradeRejectsUnknownPlan(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerOwner(t, ctx, "owner")

	require.ErrorIs(t, env.subscriptions.UpgradeSubscription(ctx, db_models.SubscriptionFree), utils.ErrInvalidRequest)
	require.ErrorIs(t, env.subscriptions.UpgradeSubscription(ctx, "lifetime"), utils.ErrInvalidRequest)
}

func TestUpgradeSetsFutureExpiry(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerOwner(t, ctx, "owner")

	require.NoError(t, env.subscriptions.UpgradeSubscription(ctx, db_models.SubscriptionYearly))

	sub := env.sessions.CurrentUser().Subscription
	require.NotNil(t, sub)
	require.Equal(t, db_models.SubscriptionYearly, sub.Type)
	require.True(t, sub.IsActive)
	require.NotNil(t, sub.ExpiresAt)
	require.True(t, sub.ExpiresAt.After(time.Now().AddDate(0, 11, 0)))
}

func TestCancelAlwaysRestoresFullFreeQuota(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerOwner(t, ctx, "owner")

	for i := 0; i < 5; i++ {
		require.NoError(t, env.subscriptions.MakeAIRequest(ctx))
	}
	require.NoError(t, env.subscriptions.UpgradeSubscription(ctx, db_models.SubscriptionMonthly))
	require.NoError(t, env.subscriptions.CancelSubscription(ctx))

	status := env.subscriptions.Status()
	require.Equal(t, db_models.SubscriptionFree, status.SubscriptionType)
	require.False(t, status.IsSubscribed)
	require.Equal(t, FreeRequestQuota, status.RemainingFreeRequests)
}

func TestExpiredSubscriptionCountsAsFreeTier(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.registerOwner(t, ctx, "owner")

	expired := time.Now().Add(-time.Hour)
	updated := *user
	updated.Subscription = &db_models.Subscription{
		Type:      db_models.SubscriptionMonthly,
		ExpiresAt: &expired,
		IsActive:  true,
	}
	require.NoError(t, env.users.Update(ctx, &updated))
	require.NoError(t, env.sessions.RefreshUserData(ctx))

	status := env.subscriptions.Status()
	require.False(t, status.IsSubscribed)
	require.False(t, status.CanMakeAIRequest)
}

func TestSimulateReachingLimitExhaustsQuota(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerOwner(t, ctx, "owner")

	require.NoError(t, env.subscriptions.SimulateReachingLimit(ctx))

	status := env.subscriptions.Status()
	require.Zero(t, status.RemainingFreeRequests)
	require.False(t, status.CanMakeAIRequest)
	require.ErrorIs(t, env.subscriptions.MakeAIRequest(ctx), utils.ErrQuotaExhausted)
}

func TestMarkFirstConsultUsed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.registerOwner(t, ctx, "owner")

	require.False(t, env.subscriptions.Status().HasUsedFirstConsult)
	require.NoError(t, env.subscriptions.MarkFirstConsultUsed(ctx))
	require.True(t, env.subscriptions.Status().HasUsedFirstConsult)
}
