package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
	"github.com/voltzpay/pix-dashboard/internal/domain/ports"
	"github.com/voltzpay/pix-dashboard/pkg/observability"
	"github.com/voltzpay/pix-dashboard/pkg/timeutil"
)

// Service implements ports.StatsProvider. It owns the refresh cycle: fetch
// one immutable snapshot (transactions + settings + now), aggregate it, and
// swap the result in for readers. Readers never see a partially computed
// snapshot.
type Service struct {
	source          ports.TransactionSource
	settings        ports.SettingsStore
	zone            *timeutil.Zone
	aggregator      *Aggregator
	logger          ports.Logger
	defaultAcquirer string

	mu           sync.RWMutex
	stats        *models.ProfitStats
	transactions []models.Transaction
}

// NewService creates a stats service
func NewService(
	source ports.TransactionSource,
	settings ports.SettingsStore,
	zone *timeutil.Zone,
	defaultAcquirer string,
	logger ports.Logger,
) *Service {
	return &Service{
		source:          source,
		settings:        settings,
		zone:            zone,
		aggregator:      NewAggregator(zone),
		logger:          logger,
		defaultAcquirer: defaultAcquirer,
		stats:           models.NewProfitStats(),
	}
}

// Refresh performs a full recomputation from a fresh snapshot. It is a
// complete rebuild, never an incremental update, so repeated refreshes
// over unchanged data converge to the same figures.
func (s *Service) Refresh(ctx context.Context) error {
	start := time.Now()

	transactions, err := s.source.FetchTransactions(ctx)
	if err != nil {
		observability.RecordRefresh("error", time.Since(start))
		return fmt.Errorf("fetch transactions: %w", err)
	}

	raw, err := s.settings.GetAll(ctx)
	if err != nil {
		observability.RecordRefresh("error", time.Since(start))
		return fmt.Errorf("fetch settings: %w", err)
	}
	feeConfig := ResolveFeeConfig(raw, s.defaultAcquirer)

	now := s.zone.Now()
	computed := s.aggregator.Aggregate(transactions, feeConfig, now)

	s.mu.Lock()
	s.stats = computed
	s.transactions = transactions
	s.mu.Unlock()

	observability.RecordRefresh("success", time.Since(start))
	observability.RecordSnapshot(computed)

	s.logger.Info("dashboard snapshot refreshed",
		ports.Int("transactions", len(transactions)),
		ports.Int("paid", computed.TransactionCount),
		ports.Int("acquirers", len(computed.Acquirers)),
		ports.Duration("duration", time.Since(start)))

	return nil
}

// Stats returns the latest computed snapshot. The value is immutable once
// produced, so concurrent readers can share it without copying.
func (s *Service) Stats() *models.ProfitStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Ranking builds the leaderboard for one window over the transactions of
// the last refresh. It is recomputed per query, never cached.
func (s *Service) Ranking(ctx context.Context, period models.Period, limit int) ([]models.UserProfitRanking, error) {
	s.mu.RLock()
	transactions := s.transactions
	s.mu.RUnlock()

	if transactions == nil {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
		s.mu.RLock()
		transactions = s.transactions
		s.mu.RUnlock()
	}

	return s.aggregator.BuildRanking(transactions, period, limit, s.zone.Now()), nil
}

// GoalProgress reads the monthly goal from settings and reports progress
// against the current snapshot's this-month net profit
func (s *Service) GoalProgress(ctx context.Context) (*models.GoalProgress, error) {
	raw, err := s.settings.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch settings: %w", err)
	}
	goal := ResolveMonthlyGoal(raw)

	return TrackGoal(goal, s.Stats().NetProfit.ThisMonth), nil
}

// SaveMonthlyGoal persists a new monthly goal. Write failures propagate to
// the caller; there is no retry here.
func (s *Service) SaveMonthlyGoal(ctx context.Context, goal decimal.Decimal) error {
	if goal.IsNegative() {
		return fmt.Errorf("monthly goal must not be negative")
	}
	if err := s.settings.Set(ctx, MonthlyGoalKey, goal.String()); err != nil {
		return fmt.Errorf("save monthly goal: %w", err)
	}
	return nil
}
