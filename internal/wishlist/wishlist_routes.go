package wishlist

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	wishlists := r.Group("/wishlists")
	wishlists.Use(middleware.AuthMiddleware(jwtSecret))
	{
		wishlists.GET("/items",
			middleware.RateLimitByUser(5, 10),
			handler.List,
		)

		// writes touch the database; keep repeated clicks in check
		itemActionLimit := middleware.RateLimitByUser(1, 3)

		wishlists.POST("/items/:productId",
			itemActionLimit,
			handler.Create,
		)
		wishlists.DELETE("/items/:productId",
			itemActionLimit,
			handler.Delete,
		)
		wishlists.POST("/items/:productId/move-to-cart",
			itemActionLimit,
			handler.MoveToCart,
		)
	}
}
