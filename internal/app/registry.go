package app

import (
	"time"

	"github.com/rohitguptaaa/AmazeMart/internal/auth"
	"github.com/rohitguptaaa/AmazeMart/internal/cart"
	"github.com/rohitguptaaa/AmazeMart/internal/catalog"
	"github.com/rohitguptaaa/AmazeMart/internal/wishlist"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, catalogRepo catalog.Repository, authDelay time.Duration) {
	// --- Repositories ---
	cartRepo := cart.NewMemoryRepository()
	wishlistRepo := wishlist.NewMemoryRepository()
	userRepo := auth.NewMemoryRepository()

	// --- Services ---
	catalogService := catalog.NewService(catalogRepo)
	cartService := cart.NewService(cartRepo, catalogService)
	wishlistService := wishlist.NewService(wishlistRepo, catalogService)
	authService := auth.NewService(userRepo, authDelay)

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	authHandler := auth.NewHandler(authService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		auth.RegisterRoutes(api, authHandler)
	}
}
