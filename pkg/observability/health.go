package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthStatus represents the health status of the service
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthChecker manages health checks for the dashboard service
type HealthChecker struct {
	dbPool      *pgxpool.Pool
	snapshotAge func() time.Duration
	maxStale    time.Duration
}

// NewHealthChecker creates a HealthChecker. snapshotAge reports how old the
// current dashboard snapshot is; a zero maxStale disables the staleness
// check.
func NewHealthChecker(dbPool *pgxpool.Pool, snapshotAge func() time.Duration, maxStale time.Duration) *HealthChecker {
	return &HealthChecker{
		dbPool:      dbPool,
		snapshotAge: snapshotAge,
		maxStale:    maxStale,
	}
}

// Check performs health checks and returns the status
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	checks := make(map[string]string)
	overallStatus := "healthy"

	if h.dbPool != nil {
		dbCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		if err := h.dbPool.Ping(dbCtx); err != nil {
			checks["database"] = "unhealthy: " + err.Error()
			overallStatus = "unhealthy"
		} else {
			checks["database"] = "healthy"
		}
	} else {
		checks["database"] = "not configured"
	}

	if h.snapshotAge != nil && h.maxStale > 0 {
		age := h.snapshotAge()
		if age > h.maxStale {
			checks["snapshot"] = "stale: " + age.Round(time.Second).String()
			overallStatus = "unhealthy"
		} else {
			checks["snapshot"] = "fresh"
		}
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now(),
		Checks:    checks,
	}
}

// HealthHandler returns an http.HandlerFunc serving the health status
func (h *HealthChecker) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := h.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if status.Status != "healthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(status)
	}
}
