package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/adapters/postgres"
	"github.com/voltzpay/pix-dashboard/internal/config"
	"github.com/voltzpay/pix-dashboard/internal/domain/models"
	"github.com/voltzpay/pix-dashboard/pkg/timeutil"
)

// Seeds a local database with sample PIX charges and default settings so
// the dashboard has something to show during development.
func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database.ConnectionString(),
		cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "seed: migrate: %v\n", err)
		os.Exit(1)
	}

	if err := seedSettings(ctx, pool, cfg.Dashboard.DefaultAcquirer); err != nil {
		fmt.Fprintf(os.Stderr, "seed: settings: %v\n", err)
		os.Exit(1)
	}

	count, err := seedTransactions(ctx, pool, cfg.Dashboard.ReferenceTimezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: transactions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded %d transactions\n", count)
}

func seedSettings(ctx context.Context, pool *pgxpool.Pool, defaultAcquirer string) error {
	settings := postgres.NewSettingsRepository(pool)

	defaults := map[string]string{
		"acquirer." + defaultAcquirer + ".rate":  "1.99",
		"acquirer." + defaultAcquirer + ".fixed": "0",
		"acquirer.efi.rate":                      "1.19",
		"acquirer.efi.fixed":                     "0",
		"acquirer.iugu.rate":                     "0",
		"acquirer.iugu.fixed":                    "0.50",
		"monthly_goal":                           "25000",
	}

	for key, value := range defaults {
		if err := settings.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

func seedTransactions(ctx context.Context, pool *pgxpool.Pool, timezone string) (int, error) {
	zone, err := timeutil.LoadZone(timezone)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(42))
	acquirers := []string{"", "efi", "iugu"}
	users := []string{"user-ana", "user-bruno", "user-carla", "user-diego", ""}
	now := zone.Now()

	count := 0
	for day := 0; day < 45; day++ {
		perDay := 3 + rng.Intn(8)
		for i := 0; i < perDay; i++ {
			createdAt := now.AddDate(0, 0, -day).
				Add(-time.Duration(rng.Intn(14)) * time.Hour)

			amount := decimal.NewFromInt(int64(10 + rng.Intn(990)))
			feeRate := decimal.NewFromFloat(4.99)

			status := models.StatusPaid
			var paidAt *time.Time
			switch rng.Intn(10) {
			case 0:
				status = models.StatusGenerated
			case 1:
				status = models.StatusExpired
			default:
				t := createdAt.Add(time.Duration(1+rng.Intn(30)) * time.Minute)
				paidAt = &t
			}

			_, err := pool.Exec(ctx, `
				INSERT INTO transactions
					(id, amount, status, created_at, paid_at, fee_percentage, fee_fixed, acquirer, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''))
				ON CONFLICT (id) DO NOTHING`,
				uuid.New(), amount.String(), string(status), createdAt, paidAt,
				feeRate.String(), "0",
				acquirers[rng.Intn(len(acquirers))],
				users[rng.Intn(len(users))])
			if err != nil {
				return count, err
			}
			count++
		}
	}

	return count, nil
}
