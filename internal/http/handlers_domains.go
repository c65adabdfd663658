package httpx

import (
	"context"
	"net/http"

	"github.com/greenplate/admin-api/internal/domain/model"
)

// AllowlistServiceInterface is what the domain handlers need from the
// allow-list service.
type AllowlistServiceInterface interface {
	Get(ctx context.Context) (*model.AllowList, error)
	AddDomain(ctx context.Context, domain string) (*model.AllowList, error)
	RemoveDomain(ctx context.Context, domain string) (*model.AllowList, error)
}

// DomainHandlers serves the /api/domains endpoints.
type DomainHandlers struct {
	Allowlist AllowlistServiceInterface
}

type addDomainRequest struct {
	Domain string `json:"domain"`
}

// List handles GET /api/domains.
func (h *DomainHandlers) List(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Allowlist.Get(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, snapshot)
}

// Add handles POST /api/domains.
func (h *DomainHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req addDomainRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	snapshot, err := h.Allowlist.AddDomain(r.Context(), req.Domain)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, snapshot)
}

// Remove handles DELETE /api/domains/{domain}.
func (h *DomainHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	domain := r.PathValue("domain")
	snapshot, err := h.Allowlist.RemoveDomain(r.Context(), domain)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, snapshot)
}
