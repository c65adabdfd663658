package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/greenplate/admin-api/internal/domain/auth"
)

// fakeSessionSource serves a fixed session for middleware tests.
type fakeSessionSource struct {
	sess domainauth.Session
}

func (f *fakeSessionSource) Snapshot() domainauth.Session { return f.sess }
func (f *fakeSessionSource) State() domainauth.State      { return f.sess.State }

func authedSession() domainauth.Session {
	return domainauth.Session{
		Identity:          &domainauth.Identity{UserID: "u-1", Email: "admin@tint.edu.in", Token: "tok"},
		Email:             "admin@tint.edu.in",
		IsAuthorizedAdmin: true,
		State:             domainauth.StateAuthenticated,
	}
}

func TestRequireAdmin(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("answers 503 while session state is initializing", func(t *testing.T) {
		guard := RequireAdmin(&fakeSessionSource{sess: domainauth.Initial()}, "")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/stalls", nil)

		guard(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	})

	t.Run("401 JSON for unauthenticated API requests", func(t *testing.T) {
		guard := RequireAdmin(&fakeSessionSource{sess: domainauth.Cleared()}, "")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/stalls", nil)

		guard(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "unauthenticated", body["error"])
	})

	t.Run("browser requests are redirected to login", func(t *testing.T) {
		guard := RequireAdmin(&fakeSessionSource{sess: domainauth.Cleared()}, "/login")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=stalls", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		guard(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login?redirect_uri=%2Fdashboard%3Ftab%3Dstalls", rec.Header().Get("Location"))
	})

	t.Run("authorized request passes with session in context", func(t *testing.T) {
		guard := RequireAdmin(&fakeSessionSource{sess: authedSession()}, "")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/stalls", nil)

		var gotEmail string
		guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotEmail = AdminEmailFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin@tint.edu.in", gotEmail)
	})

	t.Run("denied state is treated as unauthenticated", func(t *testing.T) {
		guard := RequireAdmin(&fakeSessionSource{sess: domainauth.Session{State: domainauth.StateDenied}}, "")
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/stalls", nil)

		guard(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestIsBrowserRequest(t *testing.T) {
	t.Run("api paths are never browser requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/stalls", nil)
		req.Header.Set("Accept", "text/html")
		assert.False(t, IsBrowserRequest(req))
	})

	t.Run("html accept header marks a browser", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Accept", "text/html")
		assert.True(t, IsBrowserRequest(req))
	})

	t.Run("json accept header is not a browser", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Accept", "application/json")
		assert.False(t, IsBrowserRequest(req))
	})

	t.Run("no accept header defaults to browser off api paths", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		assert.True(t, IsBrowserRequest(req))
	})
}

func TestSafeRedirectPath(t *testing.T) {
	assert.Equal(t, "/dashboard", safeRedirectPath("/dashboard"))
	assert.Empty(t, safeRedirectPath("//evil.com/phish"))
	assert.Empty(t, safeRedirectPath("https://evil.com/"))
	assert.Empty(t, safeRedirectPath("relative/path"))
}
