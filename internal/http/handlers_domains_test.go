package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenplate/admin-api/internal/domain/model"
	apperrors "github.com/greenplate/admin-api/internal/errors"
)

// fakeAllowlistService scripts the allow-list service for handler tests.
type fakeAllowlistService struct {
	list      *model.AllowList
	err       error
	gotDomain string
}

func (f *fakeAllowlistService) Get(context.Context) (*model.AllowList, error) {
	return f.list, f.err
}

func (f *fakeAllowlistService) AddDomain(_ context.Context, domain string) (*model.AllowList, error) {
	f.gotDomain = domain
	return f.list, f.err
}

func (f *fakeAllowlistService) RemoveDomain(_ context.Context, domain string) (*model.AllowList, error) {
	f.gotDomain = domain
	return f.list, f.err
}

func TestDomainHandlersList(t *testing.T) {
	h := &DomainHandlers{Allowlist: &fakeAllowlistService{
		list: &model.AllowList{TenantName: "Test College", Domains: []string{"tint.edu.in"}},
	}}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/domains", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body model.AllowList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"tint.edu.in"}, body.Domains)
}

func TestDomainHandlersAdd(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeAllowlistService{
			list: &model.AllowList{Domains: []string{"tint.edu.in", "partner.ac.in"}},
		}
		h := &DomainHandlers{Allowlist: svc}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/domains",
			strings.NewReader(`{"domain":"partner.ac.in"}`))

		h.Add(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "partner.ac.in", svc.gotDomain)
	})

	t.Run("conflict for duplicates", func(t *testing.T) {
		h := &DomainHandlers{Allowlist: &fakeAllowlistService{
			err: apperrors.Conflict("domain is already on the allow-list"),
		}}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/domains",
			strings.NewReader(`{"domain":"tint.edu.in"}`))

		h.Add(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation failure carries the field", func(t *testing.T) {
		h := &DomainHandlers{Allowlist: &fakeAllowlistService{
			err: apperrors.ValidationField("domain", "Please enter a valid domain (e.g. tint.edu.in)"),
		}}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/domains",
			strings.NewReader(`{"domain":"not a domain"}`))

		h.Add(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "domain", body["field"])
	})
}

func TestDomainHandlersRemove(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeAllowlistService{list: &model.AllowList{Domains: []string{"tint.edu.in"}}}
		h := &DomainHandlers{Allowlist: svc}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/domains/partner.ac.in", nil)
		req.SetPathValue("domain", "partner.ac.in")

		h.Remove(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "partner.ac.in", svc.gotDomain)
	})

	t.Run("last domain removal rejected", func(t *testing.T) {
		h := &DomainHandlers{Allowlist: &fakeAllowlistService{
			err: apperrors.Validation("cannot remove the last allowed domain"),
		}}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/domains/tint.edu.in", nil)
		req.SetPathValue("domain", "tint.edu.in")

		h.Remove(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "cannot remove the last allowed domain")
	})
}
