package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

// TransactionSource provides the raw charge records the engine aggregates.
// Implementations must return records in a stable order so repeated
// aggregation over the same data stays bit-identical.
type TransactionSource interface {
	FetchTransactions(ctx context.Context) ([]models.Transaction, error)
}

// SettingsStore is the key-value settings collaborator holding acquirer fee
// rates and the monthly goal. Unknown keys are ignored by the resolver;
// write failures must be surfaced, not retried here.
type SettingsStore interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

// StatsProvider is what the presentation layer consumes: the latest
// computed snapshot plus on-demand ranking and goal views.
type StatsProvider interface {
	Stats() *models.ProfitStats
	Ranking(ctx context.Context, period models.Period, limit int) ([]models.UserProfitRanking, error)
	GoalProgress(ctx context.Context) (*models.GoalProgress, error)
	SaveMonthlyGoal(ctx context.Context, goal decimal.Decimal) error
	Refresh(ctx context.Context) error
}
