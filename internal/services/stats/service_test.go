package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
	"github.com/voltzpay/pix-dashboard/internal/testutil/fixtures"
	"github.com/voltzpay/pix-dashboard/internal/testutil/mocks"
)

func newTestService(source *mocks.MockTransactionSource, settings *mocks.MockSettingsStore) *Service {
	return NewService(source, settings, testZone, "pix", mocks.NewMockLogger())
}

func TestService_Refresh(t *testing.T) {
	now := testZone.Now()
	source := &mocks.MockTransactionSource{
		Transactions: []models.Transaction{
			fixtures.NewTransaction().WithAmount(dec("100")).WithFeePercentage(dec("5")).
				WithCreatedAt(now).WithPaidAt(now).Build(),
		},
	}
	settings := mocks.NewMockSettingsStore(map[string]string{
		"acquirer.pix.rate": "2",
	})
	service := newTestService(source, settings)

	require.NoError(t, service.Refresh(context.Background()))

	stats := service.Stats()
	assert.Equal(t, 1, stats.TransactionCount)
	assertDecimal(t, "5", stats.GrossRevenue.Total)
	assertDecimal(t, "2", stats.AcquirerCosts.Total)
	assertDecimal(t, "3", stats.NetProfit.Total)
	assert.False(t, stats.ComputedAt.IsZero())
}

func TestService_Refresh_SourceErrorKeepsPreviousSnapshot(t *testing.T) {
	now := testZone.Now()
	source := &mocks.MockTransactionSource{
		Transactions: []models.Transaction{
			fixtures.NewTransaction().WithAmount(dec("100")).WithFeePercentage(dec("5")).
				WithCreatedAt(now).WithPaidAt(now).Build(),
		},
	}
	settings := mocks.NewMockSettingsStore(nil)
	service := newTestService(source, settings)

	require.NoError(t, service.Refresh(context.Background()))
	before := service.Stats()

	source.Err = errors.New("database gone")
	err := service.Refresh(context.Background())
	require.Error(t, err)

	assert.Same(t, before, service.Stats())
}

func TestService_Refresh_SettingsErrorPropagates(t *testing.T) {
	source := &mocks.MockTransactionSource{}
	settings := mocks.NewMockSettingsStore(nil)
	settings.GetErr = errors.New("settings unavailable")
	service := newTestService(source, settings)

	err := service.Refresh(context.Background())
	assert.ErrorContains(t, err, "settings unavailable")
}

func TestService_Stats_BeforeFirstRefreshIsZeroed(t *testing.T) {
	service := newTestService(&mocks.MockTransactionSource{}, mocks.NewMockSettingsStore(nil))

	stats := service.Stats()
	assert.Equal(t, 0, stats.TransactionCount)
	assertDecimal(t, "0", stats.NetProfit.Total)
}

func TestService_Ranking(t *testing.T) {
	now := testZone.Now()
	source := &mocks.MockTransactionSource{
		Transactions: []models.Transaction{
			fixtures.NewTransaction().WithAmount(dec("100")).WithFeePercentage(dec("5")).
				WithUserID("u1").WithCreatedAt(now).WithPaidAt(now).Build(),
			fixtures.NewTransaction().WithAmount(dec("300")).WithFeePercentage(dec("5")).
				WithUserID("u2").WithCreatedAt(now).WithPaidAt(now).Build(),
		},
	}
	service := newTestService(source, mocks.NewMockSettingsStore(nil))
	require.NoError(t, service.Refresh(context.Background()))

	ranking, err := service.Ranking(context.Background(), models.PeriodToday, 10)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "u2", ranking[0].UserID)
}

// A ranking query before any refresh triggers one so the leaderboard never
// serves from a missing snapshot.
func TestService_Ranking_RefreshesWhenEmpty(t *testing.T) {
	now := testZone.Now()
	source := &mocks.MockTransactionSource{
		Transactions: []models.Transaction{
			fixtures.NewTransaction().WithAmount(dec("100")).WithFeePercentage(dec("5")).
				WithUserID("u1").WithCreatedAt(now).WithPaidAt(now).Build(),
		},
	}
	service := newTestService(source, mocks.NewMockSettingsStore(nil))

	ranking, err := service.Ranking(context.Background(), models.PeriodAll, 10)
	require.NoError(t, err)
	assert.Len(t, ranking, 1)
	assert.Equal(t, 1, source.Fetches())
}

func TestService_GoalProgress(t *testing.T) {
	now := testZone.Now()
	source := &mocks.MockTransactionSource{
		Transactions: []models.Transaction{
			fixtures.NewTransaction().WithAmount(dec("1000")).WithFeePercentage(dec("10")).
				WithCreatedAt(now).WithPaidAt(now).Build(),
		},
	}
	settings := mocks.NewMockSettingsStore(map[string]string{
		"monthly_goal": "200",
	})
	service := newTestService(source, settings)
	require.NoError(t, service.Refresh(context.Background()))

	progress, err := service.GoalProgress(context.Background())
	require.NoError(t, err)

	assert.True(t, progress.HasGoal)
	assertDecimal(t, "100", progress.CurrentNet)
	assertDecimal(t, "50", progress.ProgressPercent)
	assertDecimal(t, "100", progress.Remaining)
	assert.False(t, progress.Achieved)
}

func TestService_SaveMonthlyGoal(t *testing.T) {
	settings := mocks.NewMockSettingsStore(nil)
	service := newTestService(&mocks.MockTransactionSource{}, settings)

	require.NoError(t, service.SaveMonthlyGoal(context.Background(), dec("5000")))
	assert.Equal(t, "5000", settings.SetCalls["monthly_goal"])
}

func TestService_SaveMonthlyGoal_WriteErrorPropagates(t *testing.T) {
	settings := mocks.NewMockSettingsStore(nil)
	settings.SetErr = errors.New("write refused")
	service := newTestService(&mocks.MockTransactionSource{}, settings)

	err := service.SaveMonthlyGoal(context.Background(), dec("5000"))
	assert.ErrorContains(t, err, "write refused")
}

func TestService_SaveMonthlyGoal_RejectsNegative(t *testing.T) {
	settings := mocks.NewMockSettingsStore(nil)
	service := newTestService(&mocks.MockTransactionSource{}, settings)

	err := service.SaveMonthlyGoal(context.Background(), dec("-1"))
	assert.Error(t, err)
	assert.Empty(t, settings.SetCalls)
}
