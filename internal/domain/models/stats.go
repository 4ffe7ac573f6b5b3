package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period identifies one dashboard time window for ranking queries
type Period string

const (
	PeriodAll        Period = "all"
	PeriodToday      Period = "today"
	PeriodSevenDays  Period = "sevenDays"
	PeriodThirtyDays Period = "thirtyDays"
	PeriodThisMonth  Period = "thisMonth"
)

// PeriodSet marks which overlapping windows a transaction instant falls
// into. Windows are inclusive and non-exclusive: a charge from two days ago
// is in sevenDays, thirtyDays, thisMonth (same month) and thisYear at once.
// The all-time bucket is implicit and always set.
type PeriodSet struct {
	Today       bool
	SevenDays   bool
	FifteenDays bool
	ThirtyDays  bool
	ThisMonth   bool
	LastMonth   bool
	ThisYear    bool
}

// PeriodBreakdown holds one aggregate quantity split across the eight
// dashboard windows
type PeriodBreakdown struct {
	Today       decimal.Decimal `json:"today"`
	SevenDays   decimal.Decimal `json:"seven_days"`
	FifteenDays decimal.Decimal `json:"fifteen_days"`
	ThirtyDays  decimal.Decimal `json:"thirty_days"`
	ThisMonth   decimal.Decimal `json:"this_month"`
	LastMonth   decimal.Decimal `json:"last_month"`
	ThisYear    decimal.Decimal `json:"this_year"`
	Total       decimal.Decimal `json:"total"`
}

// NewPeriodBreakdown returns a breakdown with every bucket at zero
func NewPeriodBreakdown() PeriodBreakdown {
	return PeriodBreakdown{
		Today:       decimal.Zero,
		SevenDays:   decimal.Zero,
		FifteenDays: decimal.Zero,
		ThirtyDays:  decimal.Zero,
		ThisMonth:   decimal.Zero,
		LastMonth:   decimal.Zero,
		ThisYear:    decimal.Zero,
		Total:       decimal.Zero,
	}
}

// Add accumulates value into every bucket the set marks, plus Total
func (b *PeriodBreakdown) Add(set PeriodSet, value decimal.Decimal) {
	if set.Today {
		b.Today = b.Today.Add(value)
	}
	if set.SevenDays {
		b.SevenDays = b.SevenDays.Add(value)
	}
	if set.FifteenDays {
		b.FifteenDays = b.FifteenDays.Add(value)
	}
	if set.ThirtyDays {
		b.ThirtyDays = b.ThirtyDays.Add(value)
	}
	if set.ThisMonth {
		b.ThisMonth = b.ThisMonth.Add(value)
	}
	if set.LastMonth {
		b.LastMonth = b.LastMonth.Add(value)
	}
	if set.ThisYear {
		b.ThisYear = b.ThisYear.Add(value)
	}
	b.Total = b.Total.Add(value)
}

// AcquirerPeriodData summarizes one acquirer's activity inside one window
type AcquirerPeriodData struct {
	Count  int             `json:"count"`
	Cost   decimal.Decimal `json:"cost"`
	Volume decimal.Decimal `json:"volume"`
}

// AcquirerBreakdown tracks per-acquirer activity for the four windows the
// dashboard's acquirer panel shows (a narrower set than PeriodBreakdown)
type AcquirerBreakdown struct {
	Today     AcquirerPeriodData `json:"today"`
	SevenDays AcquirerPeriodData `json:"seven_days"`
	ThisMonth AcquirerPeriodData `json:"this_month"`
	Total     AcquirerPeriodData `json:"total"`
}

// ProfitStats is the full aggregation result for one snapshot. It is
// immutable once produced; concurrent readers share the same value.
type ProfitStats struct {
	NetProfit          PeriodBreakdown               `json:"net_profit"`
	GrossRevenue       PeriodBreakdown               `json:"gross_revenue"`
	AcquirerCosts      PeriodBreakdown               `json:"acquirer_costs"`
	Acquirers          map[string]*AcquirerBreakdown `json:"acquirers"`
	TransactionCount   int                           `json:"transaction_count"`
	AverageProfit      decimal.Decimal               `json:"average_profit"`
	AverageDailyProfit decimal.Decimal               `json:"average_daily_profit"`
	MonthlyProjection  decimal.Decimal               `json:"monthly_projection"`
	TrendPercentage    decimal.Decimal               `json:"trend_percentage"`
	MonthOverMonth     decimal.Decimal               `json:"month_over_month"`
	DaysWithData       int                           `json:"days_with_data"`
	ComputedAt         time.Time                     `json:"computed_at"`
}

// NewProfitStats returns a zero-valued stats record so an empty snapshot
// serializes with explicit zeros rather than nulls
func NewProfitStats() *ProfitStats {
	return &ProfitStats{
		NetProfit:          NewPeriodBreakdown(),
		GrossRevenue:       NewPeriodBreakdown(),
		AcquirerCosts:      NewPeriodBreakdown(),
		Acquirers:          make(map[string]*AcquirerBreakdown),
		AverageProfit:      decimal.Zero,
		AverageDailyProfit: decimal.Zero,
		MonthlyProjection:  decimal.Zero,
		TrendPercentage:    decimal.Zero,
		MonthOverMonth:     decimal.Zero,
	}
}

// UserProfitRanking is one leaderboard row: platform fee revenue generated
// by one account within the selected window. Derived per query, never
// persisted.
type UserProfitRanking struct {
	UserID           string          `json:"user_id"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	TransactionCount int             `json:"transaction_count"`
	AverageProfit    decimal.Decimal `json:"average_profit"`
}

// GoalProgress reports how the current month's net profit tracks against
// the configured monthly goal
type GoalProgress struct {
	Goal            decimal.Decimal `json:"goal"`
	CurrentNet      decimal.Decimal `json:"current_net"`
	ProgressPercent decimal.Decimal `json:"progress_percent"` // clamped to 100
	Remaining       decimal.Decimal `json:"remaining"`        // floored at 0
	Achieved        bool            `json:"achieved"`
	HasGoal         bool            `json:"has_goal"` // false when no positive goal is set
}
