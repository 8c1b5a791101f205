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

type galleryRepository interface {
	List(ctx context.Context, category string, includeInactive bool) ([]models.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Create(ctx context.Context, image *models.GalleryImage) error
	Update(ctx context.Context, image *models.GalleryImage) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ReplaceDisplayOrder(ctx context.Context, ids []string) error
}

// GalleryService manages the public photo gallery.
type GalleryService struct {
	repo      galleryRepository
	cache     contentInvalidator
	media     mediaCleaner
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGalleryService constructs the service.
func NewGalleryService(repo galleryRepository, cache contentInvalidator, media mediaCleaner, validate *validator.Validate, logger *zap.Logger) *GalleryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GalleryService{repo: repo, cache: cache, media: media, validator: validate, logger: logger}
}

// List returns gallery images in display order, optionally narrowed to
// one category.
func (s *GalleryService) List(ctx context.Context, category string) ([]models.GalleryImage, error) {
	images, err := s.repo.List(ctx, category, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list gallery images")
	}
	return images, nil
}

// Create appends a new image at the end of the collection. The display
// position is global across categories.
func (s *GalleryService) Create(ctx context.Context, req dto.CreateGalleryImageRequest) ([]models.GalleryImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count gallery images")
	}
	image := &models.GalleryImage{
		ImageURL:      req.ImageURL,
		Caption:       req.Caption,
		CaptionNepali: req.CaptionNepali,
		Category:      req.Category,
		DisplayOrder:  count,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		if s.media != nil {
			s.media.RemoveByURL(ctx, req.ImageURL)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to create gallery image")
	}
	s.invalidate(ctx)
	return s.List(ctx, "")
}

// Update edits an existing gallery image.
func (s *GalleryService) Update(ctx context.Context, id string, req dto.UpdateGalleryImageRequest) ([]models.GalleryImage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "gallery image not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load gallery image")
	}
	existing.ImageURL = req.ImageURL
	existing.Caption = req.Caption
	existing.CaptionNepali = req.CaptionNepali
	existing.Category = req.Category
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to update gallery image")
	}
	s.invalidate(ctx)
	return s.List(ctx, "")
}

// Delete removes an image without renumbering the survivors.
func (s *GalleryService) Delete(ctx context.Context, id string) ([]models.GalleryImage, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to delete gallery image")
	}
	s.invalidate(ctx)
	return s.List(ctx, "")
}

// Reorder moves one image and renumbers the whole collection densely.
// The move operates on the unfiltered list.
func (s *GalleryService) Reorder(ctx context.Context, req dto.ReorderRequest) ([]models.GalleryImage, error) {
	images, err := s.repo.List(ctx, "", true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list gallery images")
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
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to reorder gallery images")
	}
	s.invalidate(ctx)
	return s.List(ctx, "")
}

func (s *GalleryService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, "gallery")
	}
}
