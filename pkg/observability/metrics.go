package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

var (
	// Snapshot refresh metrics
	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_refresh_total",
		Help: "Total number of dashboard snapshot recomputations",
	}, []string{
		"status", // success, error
	})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "dashboard_refresh_duration_seconds",
		Help: "Time to fetch and aggregate one dashboard snapshot",
		// Buckets: 10ms to 30s (full recomputation over the whole dataset)
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	// Latest snapshot figures, exported for alerting and dashboards-about-
	// the-dashboard. Values are truncated to float64; the authoritative
	// decimals live in the snapshot itself.
	snapshotTransactions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_snapshot_paid_transactions",
		Help: "Paid transactions in the latest snapshot",
	})

	snapshotNetProfit = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dashboard_snapshot_net_profit",
		Help: "Net profit in the latest snapshot per window",
	}, []string{
		"period", // today, seven_days, this_month, total
	})

	snapshotAcquirerCost = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dashboard_snapshot_acquirer_cost_total",
		Help: "All-time acquirer cost in the latest snapshot per acquirer",
	}, []string{
		"acquirer",
	})
)

// RecordRefresh records the outcome and duration of one refresh cycle
func RecordRefresh(status string, duration time.Duration) {
	refreshTotal.WithLabelValues(status).Inc()
	if status == "success" {
		refreshDuration.Observe(duration.Seconds())
	}
}

// RecordSnapshot exports the headline figures of a freshly computed snapshot
func RecordSnapshot(stats *models.ProfitStats) {
	snapshotTransactions.Set(float64(stats.TransactionCount))

	snapshotNetProfit.WithLabelValues("today").Set(stats.NetProfit.Today.InexactFloat64())
	snapshotNetProfit.WithLabelValues("seven_days").Set(stats.NetProfit.SevenDays.InexactFloat64())
	snapshotNetProfit.WithLabelValues("this_month").Set(stats.NetProfit.ThisMonth.InexactFloat64())
	snapshotNetProfit.WithLabelValues("total").Set(stats.NetProfit.Total.InexactFloat64())

	for name, breakdown := range stats.Acquirers {
		snapshotAcquirerCost.WithLabelValues(name).Set(breakdown.Total.Cost.InexactFloat64())
	}
}
