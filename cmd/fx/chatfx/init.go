package chatfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"catcare/internal/services"
)

var Module = fx.Provide(provideChatService)

func provideChatService(
	advice services.AdviceServiceInterface,
	subscriptions services.SubscriptionServiceInterface,
	log *zap.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(advice, subscriptions, log)
}
