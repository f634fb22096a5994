package wishlist

import (
	"github.com/rohitguptaaa/AmazeMart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlists := r.Group("/wishlist")
	wishlists.Use(middleware.Session())
	{
		readLimit := middleware.RateLimitBySession(5, 10)

		wishlists.GET("", readLimit, handler.List)
		wishlists.GET("/items/:productId", readLimit, handler.Membership)

		itemLimit := middleware.RateLimitBySession(2, 5)

		wishlists.POST("/items/:productId", itemLimit, handler.Add)
		wishlists.DELETE("/items/:productId", itemLimit, handler.Remove)
	}
}
