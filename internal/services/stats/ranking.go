package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
)

// DefaultRankingLimit caps the leaderboard when the caller does not ask
// for a specific size
const DefaultRankingLimit = 10

// UnknownUserBucket groups charges that carry no account identifier.
// They stay on the leaderboard instead of being dropped.
const UnknownUserBucket = "unknown"

// BuildRanking produces the top revenue-generating accounts for one
// selected window. Profit here is platform fee revenue (gross), not net
// margin: the board measures what each account generates, not what the
// platform keeps after acquirer costs.
//
// Ties keep first-seen order; the sort is stable over the grouping pass.
func (a *Aggregator) BuildRanking(transactions []models.Transaction, period models.Period, limit int, now time.Time) []models.UserProfitRanking {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	byUser := make(map[string]*models.UserProfitRanking)
	order := make([]string, 0)

	for i := range transactions {
		tx := &transactions[i]
		if !tx.IsPaid() {
			continue
		}
		if !a.classifier.InPeriod(now, tx.ClassificationInstant(), period) {
			continue
		}

		user := tx.UserID
		if user == "" {
			user = UnknownUserBucket
		}

		entry := byUser[user]
		if entry == nil {
			entry = &models.UserProfitRanking{
				UserID:      user,
				TotalProfit: decimal.Zero,
			}
			byUser[user] = entry
			order = append(order, user)
		}

		entry.TotalProfit = entry.TotalProfit.Add(GrossProfit(tx))
		entry.TransactionCount++
	}

	ranking := make([]models.UserProfitRanking, 0, len(order))
	for _, user := range order {
		entry := byUser[user]
		if entry.TransactionCount > 0 {
			entry.AverageProfit = entry.TotalProfit.Div(decimal.NewFromInt(int64(entry.TransactionCount)))
		} else {
			entry.AverageProfit = decimal.Zero
		}
		ranking = append(ranking, *entry)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalProfit.GreaterThan(ranking[j].TotalProfit)
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
