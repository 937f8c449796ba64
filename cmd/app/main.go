package main

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"catcare/cmd/fx/advicefx"
	"catcare/cmd/fx/chatfx"
	"catcare/cmd/fx/dbfx"
	"catcare/cmd/fx/directoryfx"
	"catcare/cmd/fx/sessionfx"
	"catcare/cmd/fx/subscriptionfx"
	"catcare/internal/repositories"
	"catcare/internal/services"
	"catcare/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(logger.New),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		dbfx.Module,
		sessionfx.Module,
		subscriptionfx.Module,
		advicefx.Module,
		chatfx.Module,
		directoryfx.Module,

		fx.Invoke(StartChatLoop),
	)

	app.Run()
}

// StartChatLoop restores the persisted session and runs the line-based chat
// front end until EOF or /quit.
func StartChatLoop(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	sessions services.SessionServiceInterface,
	subscriptions services.SubscriptionServiceInterface,
	chat services.ChatServiceInterface,
	directory services.DirectoryServiceInterface,
	store repositories.KeyValueStore,
	log *zap.Logger,
) {
	loop := &chatLoop{
		sessions:      sessions,
		subscriptions: subscriptions,
		chat:          chat,
		directory:     directory,
		store:         store,
		log:           log,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sessions.Initialize(ctx); err != nil {
				return err
			}
			go func() {
				loop.run(context.Background())
				if err := shutdowner.Shutdown(); err != nil {
					log.Error("shutdown failed", zap.Error(err))
				}
			}()
			return nil
		},
	})
}
