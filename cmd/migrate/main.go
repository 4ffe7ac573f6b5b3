package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/voltzpay/pix-dashboard/internal/adapters/postgres"
	"github.com/voltzpay/pix-dashboard/internal/config"
)

// Applies the dashboard schema. Safe to run on every deploy: every
// statement is idempotent.
func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database.ConnectionString(),
		cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("schema applied")
}
