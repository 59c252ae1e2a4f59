package address

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	addresses := r.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(jwtSecret))
	{
		addresses.GET("", handler.List)
		addresses.POST("", middleware.RateLimitByUser(1, 5), handler.Create)
		addresses.PUT("/:id", handler.Update)
		addresses.DELETE("/:id", handler.Delete)
		addresses.PATCH("/:id/default", handler.SetDefault)
	}
}
