package directoryfx

import (
	"go.uber.org/fx"

	"catcare/internal/repositories"
	"catcare/internal/services"
)

var Module = fx.Provide(provideDirectoryService)

func provideDirectoryService(calls repositories.CallRepository) services.DirectoryServiceInterface {
	return services.NewDirectoryService(calls)
}
