package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"catcare/internal/models/db_models"
	"catcare/internal/models/response_models"
	"catcare/internal/repositories"
	"catcare/pkg/utils"
)

// FreeRequestQuota is the number of AI requests granted to free-tier users.
const FreeRequestQuota = 20

type SubscriptionServiceInterface interface {
	// Status derives the eligibility snapshot from the active user record.
	// With no session it reports an untouched free tier that cannot consume.
	Status() response_models.SubscriptionStatus
	// MakeAIRequest consumes one unit of quota for free-tier users and is a
	// no-op for subscribed ones. Returns ErrQuotaExhausted without mutating
	// anything when the quota is gone.
	MakeAIRequest(ctx context.Context) error
	UpgradeSubscription(ctx context.Context, plan db_models.SubscriptionType) error
	// CancelSubscription drops back to the free tier and renews the full
	// free quota.
	CancelSubscription(ctx context.Context) error
	MarkFirstConsultUsed(ctx context.Context) error
	// SimulateReachingLimit force-exhausts the quota. Demo/QA helper, not
	// part of the production contract.
	SimulateReachingLimit(ctx context.Context) error
}

type SubscriptionService struct {
	sessions SessionServiceInterface
	users    repositories.UserRepository
	log      *zap.Logger
}

func NewSubscriptionService(
	sessions SessionServiceInterface,
	users repositories.UserRepository,
	log *zap.Logger,
) SubscriptionServiceInterface {
	return &SubscriptionService{sessions: sessions, users: users, log: log}
}

func (s *SubscriptionService) Status() response_models.SubscriptionStatus {
	return deriveStatus(s.sessions.CurrentUser(), time.Now())
}

func (s *SubscriptionService) MakeAIRequest(ctx context.Context) error {
	user := s.sessions.CurrentUser()
	if user == nil {
		return utils.ErrNoActiveSession
	}

	status := deriveStatus(user, time.Now())
	if status.IsSubscribed {
		return nil
	}
	if status.RemainingFreeRequests <= 0 {
		return utils.ErrQuotaExhausted
	}

	updated := *user
	usage := usageOrDefault(user, time.Now())
	usage.AIRequests++
	usage.FreeRequestsUsed++
	updated.Usage = &usage

	if err := s.users.Update(ctx, &updated); err != nil {
		return err
	}
	if err := s.sessions.RefreshUserData(ctx); err != nil {
		return err
	}

	s.log.Debug("free request consumed",
		zap.String("username", user.Username),
		zap.Int("remaining", FreeRequestQuota-usage.FreeRequestsUsed))
	return nil
}

func (s *SubscriptionService) UpgradeSubscription(ctx context.Context, plan db_models.SubscriptionType) error {
	user := s.sessions.CurrentUser()
	if user == nil {
		return utils.ErrNoActiveSession
	}

	now := time.Now()
	var expiresAt time.Time
	switch plan {
	case db_models.SubscriptionMonthly:
		expiresAt = now.AddDate(0, 1, 0)
	case db_models.SubscriptionYearly:
		expiresAt = now.AddDate(1, 0, 0)
	default:
		return utils.ErrInvalidRequest
	}

	updated := *user
	updated.Subscription = &db_models.Subscription{
		Type:      plan,
		ExpiresAt: &expiresAt,
		IsActive:  true,
	}
	if err := s.users.Update(ctx, &updated); err != nil {
		return err
	}
	if err := s.sessions.RefreshUserData(ctx); err != nil {
		return err
	}

	s.log.Info("subscription upgraded",
		zap.String("username", user.Username), zap.String("plan", string(plan)))
	return nil
}

func (s *SubscriptionService) CancelSubscription(ctx context.Context) error {
	user := s.sessions.CurrentUser()
	if user == nil {
		return utils.ErrNoActiveSession
	}

	now := time.Now()
	usage := usageOrDefault(user, now)
	usage.FreeRequestsUsed = 0
	usage.LastFreeRequestReset = now

	updated := *user
	updated.Subscription = &db_models.Subscription{Type: db_models.SubscriptionFree, IsActive: false}
	updated.Usage = &usage

	if err := s.users.Update(ctx, &updated); err != nil {
		return err
	}
	if err := s.sessions.RefreshUserData(ctx); err != nil {
		return err
	}

	s.log.Info("subscription canceled", zap.String("username", user.Username))
	return nil
}

func (s *SubscriptionService) MarkFirstConsultUsed(ctx context.Context) error {
	user := s.sessions.CurrentUser()
	if user == nil {
		return utils.ErrNoActiveSession
	}

	usage := usageOrDefault(user, time.Now())
	usage.HasUsedFirstConsult = true

	updated := *user
	updated.Usage = &usage

	if err := s.users.Update(ctx, &updated); err != nil {
		return err
	}
	return s.sessions.RefreshUserData(ctx)
}

func (s *SubscriptionService) SimulateReachingLimit(ctx context.Context) error {
	user := s.sessions.CurrentUser()
	if user == nil {
		return utils.ErrNoActiveSession
	}

	usage := usageOrDefault(user, time.Now())
	usage.AIRequests = FreeRequestQuota
	usage.FreeRequestsUsed = FreeRequestQuota

	updated := *user
	updated.Usage = &usage

	if err := s.users.Update(ctx, &updated); err != nil {
		return err
	}
	return s.sessions.RefreshUserData(ctx)
}

// deriveStatus applies the eligibility rules to a user record. Missing usage
// or subscription blocks get the new-user defaults first.
func deriveStatus(user *db_models.User, now time.Time) response_models.SubscriptionStatus {
	if user == nil {
		return response_models.SubscriptionStatus{
			SubscriptionType:      db_models.SubscriptionFree,
			RemainingFreeRequests: FreeRequestQuota,
		}
	}

	usage := usageOrDefault(user, now)
	sub := subscriptionOrDefault(user)

	remaining := FreeRequestQuota - usage.FreeRequestsUsed
	if remaining < 0 {
		remaining = 0
	}

	active := sub.IsActive &&
		(sub.Type == db_models.SubscriptionFree || sub.ExpiresAt == nil || sub.ExpiresAt.After(now))
	subscribed := active && sub.Type != db_models.SubscriptionFree

	return response_models.SubscriptionStatus{
		SubscriptionType:      sub.Type,
		IsSubscribed:          subscribed,
		CanMakeAIRequest:      active && (sub.Type != db_models.SubscriptionFree || remaining > 0),
		RemainingFreeRequests: remaining,
		HasUsedFirstConsult:   usage.HasUsedFirstConsult,
	}
}

func usageOrDefault(user *db_models.User, now time.Time) db_models.Usage {
	if user.Usage != nil {
		return *user.Usage
	}
	return db_models.Usage{LastFreeRequestReset: now}
}

func subscriptionOrDefault(user *db_models.User) db_models.Subscription {
	if user.Subscription != nil {
		return *user.Subscription
	}
	return db_models.Subscription{Type: db_models.SubscriptionFree, IsActive: true}
}
