package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/greenplate/admin-api/internal/core"
	"github.com/greenplate/admin-api/internal/data"
	"github.com/greenplate/admin-api/internal/domain/model"
	apperrors "github.com/greenplate/admin-api/internal/errors"
	"github.com/greenplate/admin-api/internal/ports"
)

// AllowlistService manages the tenant's email-domain allow-list. It also
// implements ports.AllowlistSource, so the auth manager reads the same
// store administrators mutate, with no cache in between.
type AllowlistService struct {
	repo   core.AllowlistRepository
	logger *slog.Logger
}

var _ ports.AllowlistSource = (*AllowlistService)(nil)

// NewAllowlistService creates a new AllowlistService.
func NewAllowlistService(repo core.AllowlistRepository, logger *slog.Logger) *AllowlistService {
	if repo == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("AllowlistService requires a repository")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AllowlistService{repo: repo, logger: logger}
}

// Get returns the current allow-list snapshot.
func (s *AllowlistService) Get(ctx context.Context) (*model.AllowList, error) {
	snapshot, err := s.repo.Get(ctx)
	if err != nil {
		return nil, mapAllowlistErr(err)
	}
	return snapshot, nil
}

// AddDomain validates and appends a domain to the allow-list. Adding a
// domain already present is a conflict, not a silent success, so the
// caller learns the list did not change.
func (s *AllowlistService) AddDomain(ctx context.Context, domain string) (*model.AllowList, error) {
	domain = model.NormalizeDomain(domain)
	if domain == "" {
		return nil, apperrors.ValidationField("domain", "Domain is required")
	}
	if !model.ValidDomain(domain) {
		return nil, apperrors.ValidationField("domain", "Please enter a valid domain (e.g. tint.edu.in)")
	}

	snapshot, err := s.repo.Get(ctx)
	if err != nil {
		return nil, mapAllowlistErr(err)
	}
	if snapshot.Contains(domain) {
		return nil, apperrors.Conflict("domain is already on the allow-list")
	}

	if err := s.repo.AddDomain(ctx, domain); err != nil {
		return nil, mapAllowlistErr(err)
	}
	s.logger.InfoContext(ctx, "allow-list domain added", "domain", domain)
	return s.Get(ctx)
}

// RemoveDomain removes a domain from the allow-list. The last remaining
// domain can never be removed: that check happens against the current
// list BEFORE any mutation, so a rejected removal leaves the store
// untouched and existing sessions unaffected.
func (s *AllowlistService) RemoveDomain(ctx context.Context, domain string) (*model.AllowList, error) {
	domain = model.NormalizeDomain(domain)
	if domain == "" {
		return nil, apperrors.ValidationField("domain", "Domain is required")
	}

	snapshot, err := s.repo.Get(ctx)
	if err != nil {
		return nil, mapAllowlistErr(err)
	}
	if !snapshot.Contains(domain) {
		return nil, apperrors.NotFound("domain is not on the allow-list")
	}
	if len(snapshot.Domains) <= 1 {
		return nil, apperrors.Validation("cannot remove the last allowed domain")
	}

	if err := s.repo.RemoveDomain(ctx, domain); err != nil {
		return nil, mapAllowlistErr(err)
	}
	s.logger.InfoContext(ctx, "allow-list domain removed", "domain", domain)
	return s.Get(ctx)
}

func mapAllowlistErr(err error) error {
	switch {
	case errors.Is(err, data.ErrTenantNotFound):
		return apperrors.Wrap(err, apperrors.ErrCodeServiceUnavailable, "tenant configuration missing")
	case errors.Is(err, data.ErrDomainNotPresent):
		return apperrors.Wrap(err, apperrors.ErrCodeNotFound, "domain is not on the allow-list")
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		if mapped := apperrors.MapDBError(err); errors.As(mapped, &appErr) {
			return mapped
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "allow-list store failed")
	}
}
