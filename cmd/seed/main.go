package main

import (
	"context"
	"log"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/shared/connection"
	"go-storefront-api/internal/shared/database/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := connection.ConnectDBWithRetry(cfg.DBURL, 5)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := connection.RunMigrations(db, cfg.MigrationsPath); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := seed.SeedShippingRegions(ctx, db); err != nil {
		log.Fatal(err)
	}
	if err := seed.SeedPromoCodes(ctx, db); err != nil {
		log.Fatal(err)
	}
	log.Println("✅ seed complete")
}
