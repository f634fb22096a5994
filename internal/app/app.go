package app

import (
	"os"
	"time"

	"github.com/rohitguptaaa/AmazeMart/internal/auth"
	"github.com/rohitguptaaa/AmazeMart/internal/catalog"
	"github.com/rohitguptaaa/AmazeMart/internal/middleware"
	"github.com/rohitguptaaa/AmazeMart/internal/shared/seed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, log *zap.Logger) error {
	// 1. Base middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	// 2. Load the static catalog. This is the only data the process ever
	// has; everything else starts empty per session.
	products := seed.Products()
	categories := seed.Categories()
	catalogRepo := catalog.NewRepository(products, categories)

	log.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("categories", len(categories)),
	)

	// 3. Register modules & routes
	registerModules(router, catalogRepo, simulatedAuthDelay())

	return nil
}

// simulatedAuthDelay reads the fake login/signup latency from the
// environment; the storefront default is one second.
func simulatedAuthDelay() time.Duration {
	raw := os.Getenv("AUTH_SIMULATED_DELAY")
	if raw == "" {
		return auth.DefaultSimulatedDelay
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return auth.DefaultSimulatedDelay
	}
	return d
}
