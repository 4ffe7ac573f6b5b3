package stats

import (
	"time"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
	"github.com/voltzpay/pix-dashboard/pkg/timeutil"
)

// Classifier decides which overlapping dashboard windows an instant falls
// into, relative to a given "now". Calendar windows (today, thisMonth,
// lastMonth, thisYear) are defined in the reference zone; rolling windows
// (sevenDays, fifteenDays, thirtyDays) use a strict now-minus-N-days lower
// bound on the raw instant.
type Classifier struct {
	zone *timeutil.Zone
}

// NewClassifier creates a classifier bound to the reference zone
func NewClassifier(zone *timeutil.Zone) *Classifier {
	return &Classifier{zone: zone}
}

// Classify returns the window membership of instant relative to now.
// Every dated window runs through now: a zero instant or one in the future
// (clock skew on paid_at) belongs to no dated window, and the caller still
// counts the record in the all-time bucket.
func (c *Classifier) Classify(now, instant time.Time) models.PeriodSet {
	if instant.IsZero() || instant.After(now) {
		return models.PeriodSet{}
	}

	lastMonthStart := c.zone.StartOfPreviousMonth(now)
	lastMonthEnd := c.zone.EndOfPreviousMonth(now)

	return models.PeriodSet{
		Today:       c.zone.DateKey(instant) == c.zone.DateKey(now),
		SevenDays:   instant.After(now.AddDate(0, 0, -7)),
		FifteenDays: instant.After(now.AddDate(0, 0, -15)),
		ThirtyDays:  instant.After(now.AddDate(0, 0, -30)),
		ThisMonth:   !instant.Before(c.zone.StartOfMonth(now)),
		LastMonth:   !instant.Before(lastMonthStart) && !instant.After(lastMonthEnd),
		ThisYear:    !instant.Before(c.zone.StartOfYear(now)),
	}
}

// InPeriod reports membership in a single selected window, the filter the
// leaderboard uses
func (c *Classifier) InPeriod(now, instant time.Time, period models.Period) bool {
	if period == models.PeriodAll {
		return true
	}
	set := c.Classify(now, instant)
	switch period {
	case models.PeriodToday:
		return set.Today
	case models.PeriodSevenDays:
		return set.SevenDays
	case models.PeriodThirtyDays:
		return set.ThirtyDays
	case models.PeriodThisMonth:
		return set.ThisMonth
	default:
		return false
	}
}
