package cart

import (
	"github.com/rohitguptaaa/AmazeMart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.Session())
	{
		readLimit := middleware.RateLimitBySession(5, 10)

		carts.GET("", readLimit, handler.Detail)
		carts.GET("/count", readLimit, handler.Count)
		carts.DELETE("", readLimit, handler.Clear)
		carts.PATCH("/drawer", readLimit, handler.SetDrawer)

		// Item mutations are tighter to absorb double-clicks.
		itemLimit := middleware.RateLimitBySession(2, 5)

		items := carts.Group("/items/:productId")
		{
			items.POST("", itemLimit, handler.AddItem)
			items.PATCH("", itemLimit, handler.UpdateQty)
			items.DELETE("", itemLimit, handler.RemoveItem)
		}
	}
}
