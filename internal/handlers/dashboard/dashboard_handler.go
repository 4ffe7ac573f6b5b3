package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/voltzpay/pix-dashboard/internal/domain/models"
	"github.com/voltzpay/pix-dashboard/internal/domain/ports"
)

// Handler serves the dashboard JSON API. It is a thin shim over the stats
// provider: all figures come from the engine's immutable snapshot.
type Handler struct {
	provider     ports.StatsProvider
	logger       ports.Logger
	rankingLimit int
}

// NewHandler creates a dashboard handler. rankingLimit is the leaderboard
// size used when a request does not ask for one; non-positive values fall
// back to the engine default.
func NewHandler(provider ports.StatsProvider, rankingLimit int, logger ports.Logger) *Handler {
	return &Handler{
		provider:     provider,
		logger:       logger,
		rankingLimit: rankingLimit,
	}
}

// GetStats handles GET /api/v1/dashboard/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.Stats())
}

// GetRanking handles GET /api/v1/dashboard/ranking
func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	period, ok := parsePeriod(r.URL.Query().Get("period"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_PERIOD",
			"period must be one of all, today, sevenDays, thirtyDays, thisMonth")
		return
	}

	limit := h.rankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	ranking, err := h.provider.Ranking(r.Context(), period, limit)
	if err != nil {
		h.logger.Error("ranking query failed", ports.Err(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build ranking")
		return
	}

	writeJSON(w, http.StatusOK, rankingResponse{Period: period, Ranking: ranking})
}

// GetGoal handles GET /api/v1/dashboard/goal
func (h *Handler) GetGoal(w http.ResponseWriter, r *http.Request) {
	progress, err := h.provider.GoalProgress(r.Context())
	if err != nil {
		h.logger.Error("goal progress query failed", ports.Err(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read goal")
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// PutGoal handles PUT /api/v1/dashboard/goal
func (h *Handler) PutGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "Body must be a JSON object with a goal field")
		return
	}

	goal, err := decimal.NewFromString(req.Goal)
	if err != nil || goal.IsNegative() {
		writeError(w, http.StatusBadRequest, "INVALID_GOAL", "goal must be a non-negative decimal")
		return
	}

	if err := h.provider.SaveMonthlyGoal(r.Context(), goal); err != nil {
		// Settings-write failures surface to the caller, they are not
		// retried here.
		h.logger.Error("monthly goal write failed", ports.Err(err))
		writeError(w, http.StatusBadGateway, "SETTINGS_WRITE_FAILED", "Failed to persist monthly goal")
		return
	}

	progress, err := h.provider.GoalProgress(r.Context())
	if err != nil {
		h.logger.Error("goal progress query failed", ports.Err(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Goal saved but progress unavailable")
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// PostRefresh handles POST /api/v1/dashboard/refresh
func (h *Handler) PostRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.Refresh(r.Context()); err != nil {
		h.logger.Error("manual refresh failed", ports.Err(err))
		writeError(w, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to recompute snapshot")
		return
	}
	writeJSON(w, http.StatusOK, h.provider.Stats())
}

type goalRequest struct {
	Goal string `json:"goal"`
}

type rankingResponse struct {
	Period  models.Period              `json:"period"`
	Ranking []models.UserProfitRanking `json:"ranking"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func parsePeriod(raw string) (models.Period, bool) {
	if raw == "" {
		return models.PeriodAll, true
	}
	switch models.Period(raw) {
	case models.PeriodAll, models.PeriodToday, models.PeriodSevenDays,
		models.PeriodThirtyDays, models.PeriodThisMonth:
		return models.Period(raw), true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
