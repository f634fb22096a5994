package catalog

import (
	"github.com/rohitguptaaa/AmazeMart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		// Browsing is loose enough for real users but capped against
		// scraping. limit 10 rps, burst 20
		browseLimit := middleware.RateLimitByIP(10, 20)

		products.GET("", browseLimit, handler.Browse)
		products.GET("/deals", browseLimit, handler.Deals)
		products.GET("/best-sellers", browseLimit, handler.BestSellers)
		products.GET("/trending", browseLimit, handler.Trending)

		products.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetByID,
		)
	}

	categories := r.Group("/categories")
	{
		categories.GET("", middleware.RateLimitByIP(10, 20), handler.Categories)
		categories.GET("/:id/products", middleware.RateLimitByIP(10, 20), handler.CategoryProducts)
	}
}
