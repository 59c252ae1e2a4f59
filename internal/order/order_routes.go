package order

import (
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, jwtSecret string) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware(jwtSecret))
	orders.Use(middleware.RateLimitByUser(5, 10))
	{
		// one order per 10 seconds per user on top of the idempotency key
		orders.POST("/checkout",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Idempotency(rdb),
			handler.Checkout,
		)

		orders.GET("", handler.List)
		orders.GET("/:id", handler.Detail)

		orders.PATCH("/:id/cancel",
			middleware.RateLimitByUser(0.5, 2),
			handler.Cancel,
		)
	}

	adminOrders := r.Group("/admin/orders")
	adminOrders.Use(middleware.AuthMiddleware(jwtSecret))
	adminOrders.Use(middleware.RoleMiddleware("ADMIN", "SUPERADMIN"))
	adminOrders.Use(middleware.RateLimitByIP(10, 20))
	{
		adminOrders.GET("", handler.ListAdmin)
		adminOrders.PATCH("/:id/status",
			middleware.RateLimitByUser(2, 5),
			handler.UpdateStatusByAdmin,
		)
	}
}
