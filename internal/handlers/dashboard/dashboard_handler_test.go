package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
	"github.com/voltzpay/pix-dashboard/internal/testutil/mocks"
)

// stubProvider is a canned StatsProvider for handler tests
type stubProvider struct {
	stats      *models.ProfitStats
	ranking    []models.UserProfitRanking
	rankingErr error
	progress   *models.GoalProgress
	goalErr    error
	savedGoal  *decimal.Decimal
	saveErr    error
	refreshErr error
}

func (s *stubProvider) Stats() *models.ProfitStats { return s.stats }

func (s *stubProvider) Ranking(ctx context.Context, period models.Period, limit int) ([]models.UserProfitRanking, error) {
	return s.ranking, s.rankingErr
}

func (s *stubProvider) GoalProgress(ctx context.Context) (*models.GoalProgress, error) {
	return s.progress, s.goalErr
}

func (s *stubProvider) SaveMonthlyGoal(ctx context.Context, goal decimal.Decimal) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.savedGoal = &goal
	return nil
}

func (s *stubProvider) Refresh(ctx context.Context) error { return s.refreshErr }

func newTestRouter(provider *stubProvider) http.Handler {
	return NewRouter(NewHandler(provider, 0, mocks.NewMockLogger()))
}

func TestHandler_GetStats(t *testing.T) {
	stats := models.NewProfitStats()
	stats.TransactionCount = 42
	router := newTestRouter(&stubProvider{stats: stats})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 42, body["transaction_count"])
}

func TestHandler_GetRanking(t *testing.T) {
	provider := &stubProvider{
		stats: models.NewProfitStats(),
		ranking: []models.UserProfitRanking{
			{UserID: "u1", TotalProfit: decimal.NewFromInt(50), TransactionCount: 2,
				AverageProfit: decimal.NewFromInt(25)},
		},
	}
	router := newTestRouter(provider)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/dashboard/ranking?period=sevenDays&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body rankingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.PeriodSevenDays, body.Period)
	require.Len(t, body.Ranking, 1)
	assert.Equal(t, "u1", body.Ranking[0].UserID)
}

func TestHandler_GetRanking_BadInput(t *testing.T) {
	router := newTestRouter(&stubProvider{stats: models.NewProfitStats()})

	tests := []struct {
		name string
		url  string
	}{
		{"unknown_period", "/api/v1/dashboard/ranking?period=lastYear"},
		{"non_numeric_limit", "/api/v1/dashboard/ranking?limit=ten"},
		{"zero_limit", "/api/v1/dashboard/ranking?limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_GetRanking_DefaultsToAllPeriod(t *testing.T) {
	router := newTestRouter(&stubProvider{stats: models.NewProfitStats()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/ranking", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body rankingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.PeriodAll, body.Period)
}

func TestHandler_PutGoal(t *testing.T) {
	provider := &stubProvider{
		stats:    models.NewProfitStats(),
		progress: &models.GoalProgress{HasGoal: true, Goal: decimal.NewFromInt(5000)},
	}
	router := newTestRouter(provider)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/goal",
		strings.NewReader(`{"goal": "5000"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, provider.savedGoal)
	assert.True(t, decimal.NewFromInt(5000).Equal(*provider.savedGoal))
}

func TestHandler_PutGoal_BadInput(t *testing.T) {
	router := newTestRouter(&stubProvider{stats: models.NewProfitStats()})

	tests := []struct {
		name string
		body string
	}{
		{"not_json", "goal=5000"},
		{"negative_goal", `{"goal": "-10"}`},
		{"non_numeric_goal", `{"goal": "plenty"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/goal",
				strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// A failed settings write surfaces as a gateway error, not a silent success.
func TestHandler_PutGoal_WriteFailure(t *testing.T) {
	provider := &stubProvider{
		stats:   models.NewProfitStats(),
		saveErr: errors.New("settings store down"),
	}
	router := newTestRouter(provider)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/goal",
		strings.NewReader(`{"goal": "5000"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_GetGoal(t *testing.T) {
	provider := &stubProvider{
		stats: models.NewProfitStats(),
		progress: &models.GoalProgress{
			HasGoal:         true,
			Goal:            decimal.NewFromInt(1000),
			CurrentNet:      decimal.NewFromInt(250),
			ProgressPercent: decimal.NewFromInt(25),
			Remaining:       decimal.NewFromInt(750),
		},
	}
	router := newTestRouter(provider)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/goal", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.GoalProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.HasGoal)
	assert.True(t, decimal.NewFromInt(750).Equal(body.Remaining))
}

func TestHandler_PostRefresh(t *testing.T) {
	router := newTestRouter(&stubProvider{stats: models.NewProfitStats()})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/refresh", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_PostRefresh_Failure(t *testing.T) {
	router := newTestRouter(&stubProvider{
		stats:      models.NewProfitStats(),
		refreshErr: errors.New("source unavailable"),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/refresh", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
