package subscriptionfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"catcare/internal/repositories"
	"catcare/internal/services"
)

var Module = fx.Provide(provideSubscriptionService)

func provideSubscriptionService(
	sessions services.SessionServiceInterface,
	users repositories.UserRepository,
	log *zap.Logger,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(sessions, users, log)
}
