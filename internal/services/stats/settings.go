package stats

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

// Settings keys understood by the resolver. Acquirer fee schedules live
// under acquirer.<id>.rate / acquirer.<id>.fixed; everything else in the
// settings table is ignored here.
const (
	MonthlyGoalKey    = "monthly_goal"
	acquirerKeyPrefix = "acquirer."
	rateKeySuffix     = ".rate"
	fixedKeySuffix    = ".fixed"
)

// ResolveFeeConfig builds the acquirer fee schedule from raw settings.
// Unknown keys are ignored and unparseable values resolve to zero, never
// to an error: a half-configured settings table must not take the
// dashboard down. The default acquirer always has an entry, zero-fee if
// the table carries none.
func ResolveFeeConfig(settings map[string]string, defaultAcquirer string) *models.AcquirerFeeConfig {
	cfg := &models.AcquirerFeeConfig{
		Fees:            make(map[string]models.AcquirerFees),
		DefaultAcquirer: defaultAcquirer,
	}

	for key, value := range settings {
		if !strings.HasPrefix(key, acquirerKeyPrefix) {
			continue
		}
		rest := strings.TrimPrefix(key, acquirerKeyPrefix)

		var name string
		switch {
		case strings.HasSuffix(rest, rateKeySuffix):
			name = strings.TrimSuffix(rest, rateKeySuffix)
		case strings.HasSuffix(rest, fixedKeySuffix):
			name = strings.TrimSuffix(rest, fixedKeySuffix)
		default:
			continue
		}
		if name == "" {
			continue
		}

		fees := cfg.Fees[name]
		if strings.HasSuffix(rest, rateKeySuffix) {
			fees.Rate = parseDecimal(value)
		} else {
			fees.Fixed = parseDecimal(value)
		}
		cfg.Fees[name] = fees
	}

	if _, ok := cfg.Fees[defaultAcquirer]; !ok {
		cfg.Fees[defaultAcquirer] = models.AcquirerFees{Rate: decimal.Zero, Fixed: decimal.Zero}
	}

	return cfg
}

// ResolveMonthlyGoal reads the monthly goal from raw settings, resolving
// absent or unparseable values to zero
func ResolveMonthlyGoal(settings map[string]string) decimal.Decimal {
	return parseDecimal(settings[MonthlyGoalKey])
}

func parseDecimal(value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero
	}
	return d
}
