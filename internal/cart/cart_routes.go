package cart

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	carts := r.Group("/carts")
	carts.Use(middleware.AuthMiddleware(jwtSecret))
	carts.Use(middleware.RateLimitByUser(10, 20))
	{
		carts.POST("", handler.Create)
		carts.GET("/detail", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items/:productId")
		{
			items.POST("", handler.AddItem)
			items.PATCH("", handler.UpdateQty)
			items.POST("/increment", handler.Increment)
			items.POST("/decrement", handler.Decrement)
			items.DELETE("", handler.DeleteItem)
		}
	}
}
