package http

import (
	"net/http"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/store"
	"github.com/consultbase/leadsvc/pkg/httpx"
	"github.com/consultbase/leadsvc/pkg/jwtx"
	"github.com/consultbase/leadsvc/pkg/leadsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token verifier
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	leadsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	leadsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	verifier *jwtx.Verifier,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &leadsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check the token verifier is configured
		if verifier == nil {
			checks.Signer = "error: no verification key loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := leadsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
