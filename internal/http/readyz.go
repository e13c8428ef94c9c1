package http

import (
	"net/http"
	"time"

	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/pkg/api"
	"github.com/taskhive/taskhive/pkg/httpx"
)

// ReadyzHandler is the readiness probe: it checks that the store is
// reachable and degrades to 503 when it is not.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &api.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := api.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
