package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voltzpay/pix-dashboard/internal/domain/ports"
)

// newMetricsMux wires the dashboard's operational endpoints: Prometheus
// metrics plus the health and readiness probes
func newMetricsMux(healthChecker *HealthChecker) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	if healthChecker != nil {
		mux.HandleFunc("/health", healthChecker.HealthHandler())
	}

	// Liveness only; readiness of the snapshot is what /health reports
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	return mux
}

// StartMetricsServer serves the operational endpoints on their own port,
// away from the public dashboard API
func StartMetricsServer(port string, healthChecker *HealthChecker, logger ports.Logger) *http.Server {
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      newMetricsMux(healthChecker),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", ports.Err(err))
		}
	}()

	return server
}

// ShutdownMetricsServer drains the metrics server
func ShutdownMetricsServer(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
