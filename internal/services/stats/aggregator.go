package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
	"github.com/voltzpay/pix-dashboard/pkg/timeutil"
)

// Aggregator turns one immutable snapshot (transactions + fee config +
// "now") into a ProfitStats value in a single linear pass. It holds no
// mutable state between runs: aggregating the same snapshot twice yields
// identical results.
type Aggregator struct {
	zone       *timeutil.Zone
	classifier *Classifier
}

// NewAggregator creates an aggregator bound to the reference zone
func NewAggregator(zone *timeutil.Zone) *Aggregator {
	return &Aggregator{
		zone:       zone,
		classifier: NewClassifier(zone),
	}
}

// Aggregate computes every dashboard figure over the paid subset of the
// given transactions. Pending and expired charges carry no settled revenue
// and are skipped. Transactions are accumulated in slice order so the
// result is deterministic for a stable input order.
func (a *Aggregator) Aggregate(transactions []models.Transaction, cfg *models.AcquirerFeeConfig, now time.Time) *models.ProfitStats {
	result := models.NewProfitStats()
	result.ComputedAt = now

	totalNet := decimal.Zero
	dailyNet := make(map[string]decimal.Decimal)
	paidCount := 0

	for i := range transactions {
		tx := &transactions[i]
		if !tx.IsPaid() {
			continue
		}
		paidCount++

		gross := GrossProfit(tx)
		cost := AcquirerCost(tx, cfg)
		net := gross.Sub(cost)

		instant := tx.ClassificationInstant()
		set := a.classifier.Classify(now, instant)

		result.GrossRevenue.Add(set, gross)
		result.AcquirerCosts.Add(set, cost)
		result.NetProfit.Add(set, net)
		totalNet = totalNet.Add(net)

		a.addAcquirer(result, tx, cfg, set, cost)

		if set.SevenDays {
			key := a.zone.DateKey(instant)
			dailyNet[key] = dailyNet[key].Add(net)
		}
	}

	result.TransactionCount = paidCount
	if paidCount > 0 {
		result.AverageProfit = totalNet.Div(decimal.NewFromInt(int64(paidCount)))
	}

	trend := projectTrend(result.NetProfit.SevenDays, dailyNet)
	result.AverageDailyProfit = trend.AverageDailyProfit
	result.MonthlyProjection = trend.MonthlyProjection
	result.TrendPercentage = trend.TrendPercentage
	result.DaysWithData = trend.DaysWithData

	result.MonthOverMonth = monthOverMonth(result.NetProfit.ThisMonth, result.NetProfit.LastMonth)

	return result
}

// addAcquirer accumulates the per-acquirer panel for the four windows it
// tracks. Costs are attributed to the resolved acquirer id, so charges with
// an absent or unknown acquirer land on the configured default entry.
func (a *Aggregator) addAcquirer(result *models.ProfitStats, tx *models.Transaction, cfg *models.AcquirerFeeConfig, set models.PeriodSet, cost decimal.Decimal) {
	name := cfg.ResolveName(tx.Acquirer)
	breakdown := result.Acquirers[name]
	if breakdown == nil {
		breakdown = &models.AcquirerBreakdown{
			Today:     zeroAcquirerData(),
			SevenDays: zeroAcquirerData(),
			ThisMonth: zeroAcquirerData(),
			Total:     zeroAcquirerData(),
		}
		result.Acquirers[name] = breakdown
	}

	if set.Today {
		accumulate(&breakdown.Today, tx.Amount, cost)
	}
	if set.SevenDays {
		accumulate(&breakdown.SevenDays, tx.Amount, cost)
	}
	if set.ThisMonth {
		accumulate(&breakdown.ThisMonth, tx.Amount, cost)
	}
	accumulate(&breakdown.Total, tx.Amount, cost)
}

func accumulate(data *models.AcquirerPeriodData, amount, cost decimal.Decimal) {
	data.Count++
	data.Cost = data.Cost.Add(cost)
	data.Volume = data.Volume.Add(amount)
}

func zeroAcquirerData() models.AcquirerPeriodData {
	return models.AcquirerPeriodData{Cost: decimal.Zero, Volume: decimal.Zero}
}

// AcquirerNames returns the breakdown keys in a stable order, for callers
// that render or log the acquirer panel
func AcquirerNames(stats *models.ProfitStats) []string {
	names := make([]string, 0, len(stats.Acquirers))
	for name := range stats.Acquirers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
