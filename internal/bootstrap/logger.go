package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. GIN_MODE=debug switches to the
// development config so local runs get readable console output.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("GIN_MODE") == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
