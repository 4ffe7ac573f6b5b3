package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL is the full dashboard schema. Statements are idempotent so the
// migrate command can run on every deploy.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
	id             UUID PRIMARY KEY,
	amount         NUMERIC(18, 2) NOT NULL,
	status         TEXT NOT NULL,
	created_at     TIMESTAMPTZ,
	paid_at        TIMESTAMPTZ,
	fee_percentage NUMERIC(8, 4),
	fee_fixed      NUMERIC(18, 2),
	acquirer       TEXT,
	user_id        TEXT
);

CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions (status);
CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions (created_at);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Migrate applies the dashboard schema
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
