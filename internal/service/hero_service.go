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

type heroRepository interface {
	List(ctx context.Context, includeInactive bool) ([]models.HeroImage, error)
	GetByID(ctx context.Context, id string) (*models.HeroImage, error)
	Create(ctx context.Context, image *models.HeroImage) error
	Update(ctx context.Context, image *models.HeroImage) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ReplaceDisplayOrder(ctx context.Context, ids []string) error
}

// contentInvalidator drops cached public listings after a mutation.
type contentInvalidator interface {
	Invalidate(ctx context.Context, tab string)
}

// mediaCleaner removes a stored object whose content record never landed,
// so a rejected insert does not leave an orphaned upload behind.
type mediaCleaner interface {
	RemoveByURL(ctx context.Context, publicURL string)
}

// HeroService manages the landing page carousel. Every mutation returns
// the freshly re-fetched collection so callers always render from
// database truth rather than a locally patched copy.
type HeroService struct {
	repo      heroRepository
	cache     contentInvalidator
	media     mediaCleaner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewHeroService constructs the service.
func NewHeroService(repo heroRepository, cache contentInvalidator, media mediaCleaner, validate *validator.Validate, logger *zap.Logger) *HeroService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HeroService{repo: repo, cache: cache, media: media, validator: validate, logger: logger}
}

// List returns all hero images in display order, inactive included.
func (s *HeroService) List(ctx context.Context) ([]models.HeroImage, error) {
	images, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list hero images")
	}
	return images, nil
}

// Create appends a new slide at the end of the collection and returns
// the full refreshed list.
func (s *HeroService) Create(ctx context.Context, req dto.CreateHeroImageRequest) ([]models.HeroImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count hero images")
	}
	image := &models.HeroImage{
		ImageURL:     req.ImageURL,
		AltText:      req.AltText,
		DisplayOrder: count,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		if s.media != nil {
			s.media.RemoveByURL(ctx, req.ImageURL)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to create hero image")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Update edits an existing slide and returns the refreshed list.
func (s *HeroService) Update(ctx context.Context, id string, req dto.UpdateHeroImageRequest) ([]models.HeroImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "hero image not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero image")
	}
	existing.ImageURL = req.ImageURL
	existing.AltText = req.AltText
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to update hero image")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Delete removes a slide. Display orders of the remaining slides keep
// their values; the gap persists until the next reorder. The stored
// image object is left in place.
func (s *HeroService) Delete(ctx context.Context, id string) ([]models.HeroImage, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to delete hero image")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Reorder moves one slide to a new position and renumbers the whole
// collection densely from zero. Out of range positions are a no-op.
func (s *HeroService) Reorder(ctx context.Context, req dto.ReorderRequest) ([]models.HeroImage, error) {
	images, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list hero images")
	}
	reordered, moved := moveItem(images, req.From, req.To)
	if !moved {
		return images, nil
	}
	ids := make([]string, len(reordered))
	for i, img := range reordered {
		ids[i] = img.ID
	}
	if err := s.repo.ReplaceDisplayOrder(ctx, ids); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to reorder hero images")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

func (s *HeroService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, "hero")
	}
}
