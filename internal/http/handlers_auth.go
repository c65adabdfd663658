package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
)

// AuthManagerInterface is what the auth handlers need from the session manager.
type AuthManagerInterface interface {
	Login(ctx context.Context, email, password string) (domainauth.Session, error)
	Logout(ctx context.Context)
	Snapshot() domainauth.Session
	State() domainauth.State
}

// AuthHandlers serves the /api/auth endpoints.
type AuthHandlers struct {
	Manager AuthManagerInterface
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse is the JSON shape of the session returned to clients. The
// raw provider token never leaves the server.
type sessionResponse struct {
	State             domainauth.State `json:"state"`
	Email             string           `json:"email,omitempty"`
	IsAuthorizedAdmin bool             `json:"is_authorized_admin"`
}

func toSessionResponse(sess domainauth.Session) sessionResponse {
	return sessionResponse{
		State:             sess.State,
		Email:             sess.Email,
		IsAuthorizedAdmin: sess.IsAuthorizedAdmin,
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Manager.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toSessionResponse(sess))
}

// Logout handles POST /api/auth/logout. Logout never fails observably.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Manager.Logout(r.Context())
	WriteJSON(w, http.StatusOK, toSessionResponse(h.Manager.Snapshot()))
}

// Status handles GET /api/auth/status. It is reachable without the guard so
// clients can poll the session state, including while it is initializing.
func (h *AuthHandlers) Status(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, toSessionResponse(h.Manager.Snapshot()))
}
