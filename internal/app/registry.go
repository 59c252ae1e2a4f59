package app

import (
	"database/sql"

	"go-storefront-api/internal/address"
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/order"
	"go-storefront-api/internal/outbox"
	"go-storefront-api/internal/shared/database/dbgen"
	"go-storefront-api/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// newCartService builds the cart service the API and the consumer share.
// Every committed cart change bumps the checkout session generation.
func newCartService(db *sql.DB, rdb *redis.Client, cfg config.Config, logger *zap.Logger) (cart.Service, *checkout.RedisSessionStore) {
	queries := dbgen.New(db)
	sessions := checkout.NewRedisSessionStore(rdb, cfg.CheckoutSessionTTL)

	svc := cart.NewService(cart.Deps{
		DB:       db,
		Repo:     cart.NewRepository(queries),
		Cache:    cart.NewRedisCache(rdb, cfg.CartCacheTTL),
		Listener: sessions,
		Logger:   logger,
	})
	return svc, sessions
}

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client, cfg config.Config, logger *zap.Logger) {
	queries := dbgen.New(db)

	// --- Repositories ---
	addressRepo := address.NewRepository(queries)
	orderRepo := order.NewRepository(queries)
	outboxRepo := outbox.NewRepository(queries)
	wishlistRepo := wishlist.NewRepository(queries)
	pricingRepo := checkout.NewPricingRepository(queries)

	// --- Services ---
	cartService, sessions := newCartService(db, rdb, cfg, logger)
	addressService := address.NewService(db, addressRepo, logger)
	calculator := checkout.NewCalculator(pricingRepo, cfg.Pricing, checkout.WithLogger(logger))
	checkoutService := checkout.NewService(checkout.Deps{
		Carts:     cartService,
		Addresses: addressService,
		Pricer:    calculator,
		Sessions:  sessions,
		Logger:    logger,
	})
	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		Checkout:   checkoutService,
		Logger:     logger.Named("order.service"),
	})
	wishlistService := wishlist.NewService(wishlist.Deps{
		DB:     db,
		Repo:   wishlistRepo,
		Carts:  cartService,
		Logger: logger,
	})

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartService, logger)
	addressHandler := address.NewHandler(addressService, logger)
	checkoutHandler := checkout.NewHandler(checkoutService, logger)
	orderHandler := order.NewHandler(orderService, rdb, logger)
	wishlistHandler := wishlist.NewHandler(wishlistService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		cart.RegisterRoutes(api, cartHandler, cfg.JWTSecret)
		address.RegisterRoutes(api, addressHandler, cfg.JWTSecret)
		checkout.RegisterRoutes(api, checkoutHandler, cfg.JWTSecret)
		order.RegisterRoutes(api, orderHandler, rdb, cfg.JWTSecret)
		wishlist.RegisterRoutes(api, wishlistHandler, cfg.JWTSecret)
	}
}
