package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/authsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

const (
	healthOK       = "ok"
	healthDegraded = "degraded"
	checkError     = "error"
)

// healthReport reports uptime and version for both health endpoints.
type healthReport struct {
	startTime time.Time
	version   string
}

func (p healthReport) report(status string, checks *authsdk.HealthChecks) authsdk.HealthResponse {
	return authsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(p.startTime).Round(time.Second).String(),
		Version: p.version,
		Checks:  checks,
	}
}

func writeHealth(w http.ResponseWriter, code int, body authsdk.HealthResponse) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, code, body)
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	p := healthReport{startTime: startTime, version: version}
	return func(w http.ResponseWriter, _ *http.Request) {
		writeHealth(w, http.StatusOK, p.report(healthOK, nil))
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	signer SignerChecker,
) http.HandlerFunc {
	p := healthReport{startTime: startTime, version: version}
	return func(w http.ResponseWriter, r *http.Request) {
		log := slogx.FromContext(r.Context())
		checks := &authsdk.HealthChecks{Database: healthOK, Signer: healthOK}

		ctx, cancel := pingContext(r.Context())
		defer cancel()

		// Raw errors are logged, not returned.
		if err := st.Ping(ctx); err != nil {
			log.Warn("readiness: database ping failed", "err", err)
			checks.Database = checkError
		}
		if err := signer.Ready(); err != nil {
			log.Warn("readiness: signer not ready", "err", err)
			checks.Signer = checkError
		}

		if checks.Database != healthOK || checks.Signer != healthOK {
			writeHealth(w, http.StatusServiceUnavailable, p.report(healthDegraded, checks))
			return
		}
		writeHealth(w, http.StatusOK, p.report(healthOK, checks))
	}
}
