package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/models"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
)

type teamRepository interface {
	List(ctx context.Context, includeInactive bool) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Create(ctx context.Context, member *models.TeamMember) error
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ReplaceDisplayOrder(ctx context.Context, ids []string) error
}

// TeamService manages staff profiles shown on the about page.
type TeamService struct {
	repo      teamRepository
	cache     contentInvalidator
	media     mediaCleaner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeamService constructs the service.
func NewTeamService(repo teamRepository, cache contentInvalidator, media mediaCleaner, validate *validator.Validate, logger *zap.Logger) *TeamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{repo: repo, cache: cache, media: media, validator: validate, logger: logger}
}

// List returns all team members in display order.
func (s *TeamService) List(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list team members")
	}
	return members, nil
}

// Create appends a new member at the end of the collection.
func (s *TeamService) Create(ctx context.Context, req dto.CreateTeamMemberRequest) ([]models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count team members")
	}
	member := &models.TeamMember{
		Name:           req.Name,
		NameNepali:     req.NameNepali,
		Position:       req.Position,
		PositionNepali: req.PositionNepali,
		ImageURL:       req.ImageURL,
		DisplayOrder:   count,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		if s.media != nil {
			s.media.RemoveByURL(ctx, req.ImageURL)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to create team member")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Update edits an existing member profile.
func (s *TeamService) Update(ctx context.Context, id string, req dto.UpdateTeamMemberRequest) ([]models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "team member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load team member")
	}
	existing.Name = req.Name
	existing.NameNepali = req.NameNepali
	existing.Position = req.Position
	existing.PositionNepali = req.PositionNepali
	existing.ImageURL = req.ImageURL
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to update team member")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Delete removes a member without renumbering the survivors.
func (s *TeamService) Delete(ctx context.Context, id string) ([]models.TeamMember, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to delete team member")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Reorder moves one member and renumbers the collection densely.
func (s *TeamService) Reorder(ctx context.Context, req dto.ReorderRequest) ([]models.TeamMember, error) {
	members, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list team members")
	}
	reordered, moved := moveItem(members, req.From, req.To)
	if !moved {
		return members, nil
	}
	ids := make([]string, len(reordered))
	for i, m := range reordered {
		ids[i] = m.ID
	}
	if err := s.repo.ReplaceDisplayOrder(ctx, ids); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to reorder team members")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

func (s *TeamService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, "team")
	}
}
