package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/greenplate/admin-api/internal/core"
	"github.com/greenplate/admin-api/internal/data"
	"github.com/greenplate/admin-api/internal/domain/model"
	apperrors "github.com/greenplate/admin-api/internal/errors"
)

// StallService manages food stalls for the tenant.
type StallService struct {
	repo   core.StallRepository
	logger *slog.Logger
}

// NewStallService creates a new StallService.
func NewStallService(repo core.StallRepository, logger *slog.Logger) *StallService {
	if repo == nil {
		//nolint:forbidigo // Service construction must fail fast during wiring when dependencies are missing
		panic("StallService requires a repository")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StallService{repo: repo, logger: logger}
}

// Create registers a new stall. Verification always starts false and
// createdBy records the signed-in admin's email.
func (s *StallService) Create(ctx context.Context, req *model.CreateStallRequest, createdBy string) (*model.Stall, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	stall, err := s.repo.Create(ctx, req, createdBy)
	if err != nil {
		return nil, mapStallErr(err)
	}
	s.logger.InfoContext(ctx, "stall created", "stall_id", stall.ID, "name", stall.Name)
	return stall, nil
}

// Get returns a single stall by ID.
func (s *StallService) Get(ctx context.Context, id string) (*model.Stall, error) {
	if id == "" {
		return nil, apperrors.ValidationField("id", "Stall ID is required")
	}
	stall, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStallErr(err)
	}
	return stall, nil
}

// List returns all stalls for the tenant, newest first.
func (s *StallService) List(ctx context.Context) ([]*model.Stall, error) {
	stalls, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapStallErr(err)
	}
	return stalls, nil
}

// Update applies a partial update to a stall.
func (s *StallService) Update(ctx context.Context, id string, req model.UpdateStallRequest) (*model.Stall, error) {
	if id == "" {
		return nil, apperrors.ValidationField("id", "Stall ID is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	stall, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, mapStallErr(err)
	}
	s.logger.InfoContext(ctx, "stall updated", "stall_id", stall.ID)
	return stall, nil
}

// ToggleVerification flips a stall's verified flag.
func (s *StallService) ToggleVerification(ctx context.Context, id string) (*model.Stall, error) {
	if id == "" {
		return nil, apperrors.ValidationField("id", "Stall ID is required")
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStallErr(err)
	}
	verified := !current.IsVerified
	stall, err := s.repo.Update(ctx, id, model.UpdateStallRequest{IsVerified: &verified})
	if err != nil {
		return nil, mapStallErr(err)
	}
	s.logger.InfoContext(ctx, "stall verification toggled",
		"stall_id", stall.ID, "is_verified", stall.IsVerified)
	return stall, nil
}

// Delete removes a stall.
func (s *StallService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ValidationField("id", "Stall ID is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapStallErr(err)
	}
	s.logger.InfoContext(ctx, "stall deleted", "stall_id", id)
	return nil
}

// Stats returns aggregate stall counts for the dashboard.
func (s *StallService) Stats(ctx context.Context) (*model.StallStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, mapStallErr(err)
	}
	return stats, nil
}

func mapStallErr(err error) error {
	if errors.Is(err, data.ErrStallNotFound) {
		return apperrors.Wrap(err, apperrors.ErrCodeNotFound, "stall not found")
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	// Constraint violations and timeouts carry user-actionable codes; a
	// duplicate stall name surfaces as a conflict, not a 500.
	if mapped := apperrors.MapDBError(err); errors.As(mapped, &appErr) {
		return mapped
	}
	return apperrors.Wrap(err, apperrors.ErrCodeInternal, "stall store failed")
}
