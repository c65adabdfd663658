package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
	"github.com/greenplate/admin-api/internal/mocks"
	mockauth "github.com/greenplate/admin-api/internal/mocks/auth"
	"github.com/greenplate/admin-api/internal/service"
	"github.com/greenplate/admin-api/internal/testutil"
)

// newTestRouter wires real services over test doubles and returns the
// router plus the identity provider for minting sessions.
func newTestRouter(t *testing.T) (http.Handler, *service.AuthManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	allowlistRepo := mocks.NewMockAllowlistRepository(ctrl)
	allowlistRepo.EXPECT().Get(gomock.Any()).
		Return(testutil.NewAllowList().WithDomains("tint.edu.in").Build(), nil).
		AnyTimes()
	stallRepo := mocks.NewMockStallRepository(ctrl)

	provider := mockauth.NewMockIdentityProvider(map[string]string{
		"admin@tint.edu.in": "pw",
	})
	allowlistSvc := service.NewAllowlistService(allowlistRepo, nil)
	mgr := service.NewAuthManager(service.AuthManagerOptions{
		Provider:  provider,
		Allowlist: allowlistSvc,
		Tokens:    &mockauth.MemoryTokenStore{},
	})
	t.Cleanup(mgr.Close)

	router := NewRouter(RouterServices{
		Auth:      mgr,
		Allowlist: allowlistSvc,
		Stalls:    service.NewStallService(stallRepo, nil),
	})
	return router, mgr
}

func TestRouterGuardsAdminRoutes(t *testing.T) {
	router, mgr := newTestRouter(t)

	t.Run("503 before session state resolves", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stalls", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	mgr.Start(context.Background())

	t.Run("401 once resolved unauthenticated", func(t *testing.T) {
		for _, path := range []string{"/api/stalls", "/api/domains", "/api/dashboard/stats"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})

	t.Run("auth and health endpoints stay reachable", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouterLoginFlow(t *testing.T) {
	router, mgr := newTestRouter(t)
	mgr.Start(context.Background())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@tint.edu.in","password":"pw"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domainauth.StateAuthenticated, mgr.State())

	t.Run("guarded route now serves", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/domains", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "tint.edu.in")
	})

	t.Run("logout clears access", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/domains", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
