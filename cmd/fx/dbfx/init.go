package dbfx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"catcare/internal/infra"
	"catcare/internal/repositories"
)

var Module = fx.Provide(provideStore)

const defaultDBPath = "catcare.db"

// provideStore picks the storage backend: the sqlite file named by
// CATCARE_DB, or a throwaway in-memory store when CATCARE_MEMORY is set.
func provideStore(lc fx.Lifecycle, log *zap.Logger) (repositories.KeyValueStore, error) {
	if os.Getenv("CATCARE_MEMORY") != "" {
		log.Info("using in-memory storage, data will not survive restarts")
		return repositories.NewMemoryStore(), nil
	}

	path := os.Getenv("CATCARE_DB")
	if path == "" {
		path = defaultDBPath
	}

	db, err := infra.InitSQLite(path)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.CloseSQLite(db)
		},
	})

	log.Info("sqlite storage opened", zap.String("path", path))
	return repositories.NewGormStore(db), nil
}
