package httpx

import (
	"context"
	"net/http"

	"github.com/greenplate/admin-api/internal/domain/model"
)

// StatsSource is what the dashboard handler needs from the stall service.
type StatsSource interface {
	Stats(ctx context.Context) (*model.StallStats, error)
}

// AllowlistSnapshotSource is the read-only slice of the allow-list service
// the dashboard needs.
type AllowlistSnapshotSource interface {
	Get(ctx context.Context) (*model.AllowList, error)
}

// DashboardHandlers serves the /api/dashboard endpoints.
type DashboardHandlers struct {
	Stats     StatsSource
	Allowlist AllowlistSnapshotSource
}

type dashboardStatsResponse struct {
	Total          int    `json:"total"`
	Verified       int    `json:"verified"`
	Active         int    `json:"active"`
	AllowedDomains int    `json:"allowed_domains"`
	TenantName     string `json:"tenant_name"`
}

// GetStats handles GET /api/dashboard/stats.
func (h *DashboardHandlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Stats(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	list, err := h.Allowlist.Get(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, dashboardStatsResponse{
		Total:          stats.Total,
		Verified:       stats.Verified,
		Active:         stats.Active,
		AllowedDomains: len(list.Domains),
		TenantName:     list.TenantName,
	})
}
