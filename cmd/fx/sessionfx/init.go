package sessionfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"catcare/internal/repositories"
	"catcare/internal/services"
)

var Module = fx.Provide(
	provideUserRepo,
	providePetRepo,
	provideCallRepo,
	provideSessionRepo,
	provideSeeder,
	provideSessionService,
)

func provideUserRepo(store repositories.KeyValueStore, log *zap.Logger) repositories.UserRepository {
	return repositories.NewUserRepository(store, log)
}

func providePetRepo(store repositories.KeyValueStore, log *zap.Logger) repositories.PetRepository {
	return repositories.NewPetRepository(store, log)
}

func provideCallRepo(store repositories.KeyValueStore, log *zap.Logger) repositories.CallRepository {
	return repositories.NewCallRepository(store, log)
}

func provideSessionRepo(store repositories.KeyValueStore, log *zap.Logger) repositories.SessionRepository {
	return repositories.NewSessionRepository(store, log)
}

func provideSeeder(users repositories.UserRepository, pets repositories.PetRepository, log *zap.Logger) *repositories.DemoSeeder {
	return repositories.NewDemoSeeder(users, pets, log)
}

func provideSessionService(
	users repositories.UserRepository,
	pets repositories.PetRepository,
	calls repositories.CallRepository,
	sessions repositories.SessionRepository,
	seeder *repositories.DemoSeeder,
	log *zap.Logger,
) services.SessionServiceInterface {
	return services.NewSessionService(users, pets, calls, sessions, seeder, log)
}
