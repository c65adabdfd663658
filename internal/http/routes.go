package httpx

import (
	"database/sql"
	"net/http"

	"github.com/greenplate/admin-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthManager
	Allowlist *service.AllowlistService
	Stalls    *service.StallService
	DB        *sql.DB // Optional: enables the database readiness probe
	LoginPath string  // Browser redirect target for unauthenticated requests (optional)
}

// NewRouter creates and configures the HTTP router. Middleware (logging,
// panic recovery) is layered on by the caller.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Manager: services.Auth}
	domainHandlers := &DomainHandlers{Allowlist: services.Allowlist}
	stallHandlers := &StallHandlers{Stalls: services.Stalls}
	dashboardHandlers := &DashboardHandlers{Stats: services.Stalls, Allowlist: services.Allowlist}
	healthHandlers := &HealthHandlers{DB: services.DB, Sessions: services.Auth}

	guard := RequireAdmin(services.Auth, services.LoginPath)

	registerAuthRoutes(mux, authHandlers)
	registerDomainRoutes(mux, domainHandlers, guard)
	registerStallRoutes(mux, stallHandlers, guard)
	registerDashboardRoutes(mux, dashboardHandlers, guard)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandlers.Health))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandlers.Health))

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.Login))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /api/auth/status", http.HandlerFunc(h.Status))
}

func registerDomainRoutes(mux *http.ServeMux, h *DomainHandlers, guard func(http.Handler) http.Handler) {
	mux.Handle("GET /api/domains", guard(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/domains", guard(http.HandlerFunc(h.Add)))
	mux.Handle("DELETE /api/domains/{domain}", guard(http.HandlerFunc(h.Remove)))
}

func registerStallRoutes(mux *http.ServeMux, h *StallHandlers, guard func(http.Handler) http.Handler) {
	mux.Handle("GET /api/stalls", guard(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/stalls", guard(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/stalls/{id}", guard(http.HandlerFunc(h.Get)))
	mux.Handle("PATCH /api/stalls/{id}", guard(http.HandlerFunc(h.Update)))
	mux.Handle("POST /api/stalls/{id}/verify", guard(http.HandlerFunc(h.ToggleVerification)))
	mux.Handle("DELETE /api/stalls/{id}", guard(http.HandlerFunc(h.Delete)))
}

func registerDashboardRoutes(mux *http.ServeMux, h *DashboardHandlers, guard func(http.Handler) http.Handler) {
	mux.Handle("GET /api/dashboard/stats", guard(http.HandlerFunc(h.GetStats)))
}
