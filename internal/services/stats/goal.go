package stats

import (
	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

// TrackGoal reports how the current month's net profit tracks against the
// configured monthly goal. A non-positive goal yields the not-applicable
// state (HasGoal=false) with every figure zeroed.
func TrackGoal(goal, thisMonthNet decimal.Decimal) *models.GoalProgress {
	progress := &models.GoalProgress{
		Goal:            goal,
		CurrentNet:      thisMonthNet,
		ProgressPercent: decimal.Zero,
		Remaining:       decimal.Zero,
	}

	if !goal.IsPositive() {
		return progress
	}

	progress.HasGoal = true
	progress.Achieved = thisMonthNet.GreaterThanOrEqual(goal)

	percent := thisMonthNet.Div(goal).Mul(hundred)
	if percent.GreaterThan(hundred) {
		percent = hundred
	}
	progress.ProgressPercent = percent

	remaining := goal.Sub(thisMonthNet)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	progress.Remaining = remaining

	return progress
}
