package checkout

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(jwtSecret))
	checkout.Use(middleware.RateLimitByUser(5, 10))
	{
		checkout.GET("/options", handler.Options)
		checkout.POST("/summary", handler.Summary)
		checkout.POST("/promocode", handler.ApplyPromo)
		checkout.DELETE("/promocode", handler.RemovePromo)
		checkout.PUT("/address", handler.SelectAddress)
		checkout.PUT("/payment-method", handler.SelectPaymentMethod)
	}
}
