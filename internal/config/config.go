package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv string
	Port   string

	DBURL          string
	MigrationsPath string
	RedisAddr      string
	KafkaBroker    string
	KafkaTopic     string
	KafkaGroupID   string
	JWTSecret      string

	Pricing PricingConfig

	CartCacheTTL       time.Duration
	CheckoutSessionTTL time.Duration
}

// PricingConfig holds the fallbacks used for regions without their own row
// in shipping_regions.
type PricingConfig struct {
	FreeShippingThreshold decimal.Decimal
	ShippingCost          decimal.Decimal
	TaxRate               decimal.Decimal
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		DBURL:          os.Getenv("DB_URL"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://db/migrations"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:    getEnv("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "order.events"),
		KafkaGroupID:   getEnv("KAFKA_GROUP_ID", "cart-consumer-group"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.Pricing.FreeShippingThreshold, err = getDecimal("FREE_SHIPPING_THRESHOLD", "500"); err != nil {
		return Config{}, err
	}
	if cfg.Pricing.ShippingCost, err = getDecimal("DEFAULT_SHIPPING_COST", "50"); err != nil {
		return Config{}, err
	}
	if cfg.Pricing.TaxRate, err = getDecimal("DEFAULT_TAX_RATE", "0.18"); err != nil {
		return Config{}, err
	}
	if cfg.CartCacheTTL, err = getDuration("CART_CACHE_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.CheckoutSessionTTL, err = getDuration("CHECKOUT_SESSION_TTL", 2*time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.Pricing.TaxRate.IsNegative() || cfg.Pricing.ShippingCost.IsNegative() || cfg.Pricing.FreeShippingThreshold.IsNegative() {
		return Config{}, fmt.Errorf("pricing defaults must not be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDecimal(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// getDuration accepts Go durations ("90s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
