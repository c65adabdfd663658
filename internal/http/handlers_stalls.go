package httpx

import (
	"context"
	"net/http"

	"github.com/greenplate/admin-api/internal/domain/model"
)

// StallServiceInterface is what the stall handlers need from the stall service.
type StallServiceInterface interface {
	Create(ctx context.Context, req *model.CreateStallRequest, createdBy string) (*model.Stall, error)
	Get(ctx context.Context, id string) (*model.Stall, error)
	List(ctx context.Context) ([]*model.Stall, error)
	Update(ctx context.Context, id string, req model.UpdateStallRequest) (*model.Stall, error)
	ToggleVerification(ctx context.Context, id string) (*model.Stall, error)
	Delete(ctx context.Context, id string) error
}

// StallHandlers serves the /api/stalls endpoints.
type StallHandlers struct {
	Stalls StallServiceInterface
}

// List handles GET /api/stalls.
func (h *StallHandlers) List(w http.ResponseWriter, r *http.Request) {
	stalls, err := h.Stalls.List(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if stalls == nil {
		stalls = []*model.Stall{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"stalls": stalls})
}

// Create handles POST /api/stalls. The creating admin's email is recorded as
// created_by from the guarded session, never from the request body.
func (h *StallHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateStallRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	stall, err := h.Stalls.Create(r.Context(), &req, AdminEmailFromContext(r.Context()))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, stall)
}

// Get handles GET /api/stalls/{id}.
func (h *StallHandlers) Get(w http.ResponseWriter, r *http.Request) {
	stall, err := h.Stalls.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stall)
}

// Update handles PATCH /api/stalls/{id}.
func (h *StallHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStallRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	stall, err := h.Stalls.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stall)
}

// ToggleVerification handles POST /api/stalls/{id}/verify.
func (h *StallHandlers) ToggleVerification(w http.ResponseWriter, r *http.Request) {
	stall, err := h.Stalls.ToggleVerification(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stall)
}

// Delete handles DELETE /api/stalls/{id}.
func (h *StallHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Stalls.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
