package httpx

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

// HealthHandlers serves liveness/readiness probes.
type HealthHandlers struct {
	DB       *sql.DB
	Sessions SessionSource
}

// Health handles GET /healthz. The process is live as soon as it serves;
// readiness additionally reports the database and the session manager.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok"}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			resp["status"] = "degraded"
			resp["database"] = "unreachable"
		} else {
			resp["database"] = "ok"
		}
	}
	if h.Sessions != nil {
		resp["session_state"] = h.Sessions.State()
	}

	code := http.StatusOK
	if resp["status"] != "ok" {
		code = http.StatusServiceUnavailable
	}
	WriteJSON(w, code, resp)
}
