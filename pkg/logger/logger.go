package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. CATCARE_DEBUG switches to the development
// config so repositories log their fail-soft read recoveries verbosely.
func New() (*zap.Logger, error) {
	if os.Getenv("CATCARE_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
