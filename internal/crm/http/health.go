package http

import (
	"net/http"
	"time"

	"github.com/sellside/prospectd/internal/crm/store"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type HealthHandler struct {
	Store        store.Store
	BuildVersion string
	StartTime    time.Time
}

// ServeHTTP reports overall service health including a database check.
//
//	@Summary	Service health
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	crmsdk.HealthResponse
//	@Failure	503	{object}	crmsdk.HealthResponse
//	@Router		/health [get].
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := &crmsdk.HealthChecks{Database: "ok", Signer: "ok"}
	status := "ok"
	code := http.StatusOK

	if err := h.Store.Ping(r.Context()); err != nil {
		checks.Database = "unreachable"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, code, crmsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
		Version: h.BuildVersion,
		Checks:  checks,
	})
}

type LivezHandler struct {
	BuildVersion string
	StartTime    time.Time
}

// ServeHTTP reports process liveness only; no dependencies are checked.
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	crmsdk.HealthResponse
//	@Router		/livez [get].
func (h *LivezHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.HealthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
		Version: h.BuildVersion,
	})
}

type ReadyzHandler struct {
	Store store.Store
}

// ServeHTTP reports readiness: the database must answer.
//
//	@Summary	Readiness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	crmsdk.HealthResponse
//	@Failure	503	{object}	crmsdk.HealthResponse
//	@Router		/readyz [get].
func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, crmsdk.HealthResponse{Status: "not ready"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.HealthResponse{Status: "ready"})
}
