package auth

import (
	"github.com/rohitguptaaa/AmazeMart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		// Tight limits on credential endpoints.
		credentialLimit := middleware.RateLimitByIP(1, 3)

		authGroup.POST("/register", credentialLimit, handler.Register)
		authGroup.POST("/login", credentialLimit, handler.Login)

		me := authGroup.Group("")
		me.Use(middleware.AuthMiddleware())
		{
			me.GET("/me", middleware.RateLimitByIP(5, 10), handler.Me)
		}
	}
}
