package advicefx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"catcare/internal/services"
)

var Module = fx.Provide(provideAdviceService)

func provideAdviceService(log *zap.Logger) services.AdviceServiceInterface {
	cfg := services.AdviceConfig{}
	if os.Getenv("CATCARE_ESCALATION") == string(services.EscalateSometimes) {
		cfg.Policy = services.EscalateSometimes
	}
	return services.NewAdviceService(cfg, log)
}
