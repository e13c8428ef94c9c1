package http

import (
	"net/http"
	"time"

	"github.com/taskhive/taskhive/pkg/api"
	"github.com/taskhive/taskhive/pkg/httpx"
)

// LivezHandler is the liveness probe: it answers 200 whenever the process
// is up, regardless of dependency health.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := api.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
