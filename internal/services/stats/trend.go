package stats

import (
	"sort"

	"github.com/shopspring/decimal"
)

var (
	seven  = decimal.NewFromInt(7)
	thirty = decimal.NewFromInt(30)
)

// trendFigures are the projection numbers derived from the 7-day window
type trendFigures struct {
	AverageDailyProfit decimal.Decimal
	MonthlyProjection  decimal.Decimal
	TrendPercentage    decimal.Decimal
	DaysWithData       int
}

// projectTrend derives the weekly-average figures from the per-day net
// profit series of the 7-day window. The divisor is always 7: the average
// is a weekly one, not a per-active-day one.
func projectTrend(sevenDaysNet decimal.Decimal, dailyNet map[string]decimal.Decimal) trendFigures {
	avgDaily := sevenDaysNet.Div(seven)

	return trendFigures{
		AverageDailyProfit: avgDaily,
		MonthlyProjection:  avgDaily.Mul(thirty),
		TrendPercentage:    trendPercentage(dailyNet),
		DaysWithData:       len(dailyNet),
	}
}

// trendPercentage splits the sorted days-with-data into halves by index
// (odd count puts the extra day in the second half) and reports the second
// half's growth over the first. A non-positive first half yields 0.
func trendPercentage(dailyNet map[string]decimal.Decimal) decimal.Decimal {
	if len(dailyNet) < 2 {
		return decimal.Zero
	}

	days := make([]string, 0, len(dailyNet))
	for day := range dailyNet {
		days = append(days, day)
	}
	sort.Strings(days)

	mid := len(days) / 2
	firstHalf := decimal.Zero
	secondHalf := decimal.Zero
	for i, day := range days {
		if i < mid {
			firstHalf = firstHalf.Add(dailyNet[day])
		} else {
			secondHalf = secondHalf.Add(dailyNet[day])
		}
	}

	if !firstHalf.IsPositive() {
		return decimal.Zero
	}
	return secondHalf.Sub(firstHalf).Div(firstHalf).Mul(hundred)
}

// monthOverMonth reports the percentage change of this month's net profit
// against last month's. A zero previous month resolves to 100 when this
// month is positive and 0 otherwise, so a zero baseline still signals
// growth without dividing by zero.
func monthOverMonth(thisMonth, lastMonth decimal.Decimal) decimal.Decimal {
	if lastMonth.IsPositive() {
		return thisMonth.Sub(lastMonth).Div(lastMonth).Mul(hundred)
	}
	if thisMonth.IsPositive() {
		return hundred
	}
	return decimal.Zero
}
