package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/dto"
	"github.com/sunrise-school/cms-api/internal/models"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
)

type noticeRepository interface {
	List(ctx context.Context, includeInactive bool) ([]models.Notice, error)
	GetByID(ctx context.Context, id string) (*models.Notice, error)
	Create(ctx context.Context, notice *models.Notice) error
	Update(ctx context.Context, notice *models.Notice) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	ReplaceDisplayOrder(ctx context.Context, ids []string) error
}

// NoticeService manages the notice board.
type NoticeService struct {
	repo      noticeRepository
	cache     contentInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoticeService constructs the service.
func NewNoticeService(repo noticeRepository, cache contentInvalidator, validate *validator.Validate, logger *zap.Logger) *NoticeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoticeService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns all notices in display order.
func (s *NoticeService) List(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}
	return notices, nil
}

// Create appends a new notice at the end of the collection.
func (s *NoticeService) Create(ctx context.Context, req dto.CreateNoticeRequest) ([]models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := validateNoticeDate(req.Date); err != nil {
		return nil, err
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count notices")
	}
	notice := &models.Notice{
		Title:        req.Title,
		Date:         req.Date,
		Content:      req.Content,
		DisplayOrder: count,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to create notice")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Update edits an existing notice.
func (s *NoticeService) Update(ctx context.Context, id string, req dto.UpdateNoticeRequest) ([]models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := validateNoticeDate(req.Date); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "notice not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load notice")
	}
	existing.Title = req.Title
	existing.Date = req.Date
	existing.Content = req.Content
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to update notice")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Delete removes a notice without renumbering the survivors.
func (s *NoticeService) Delete(ctx context.Context, id string) ([]models.Notice, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to delete notice")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

// Reorder moves one notice and renumbers the collection densely.
func (s *NoticeService) Reorder(ctx context.Context, req dto.ReorderRequest) ([]models.Notice, error) {
	notices, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}
	reordered, moved := moveItem(notices, req.From, req.To)
	if !moved {
		return notices, nil
	}
	ids := make([]string, len(reordered))
	for i, n := range reordered {
		ids[i] = n.ID
	}
	if err := s.repo.ReplaceDisplayOrder(ctx, ids); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteWrite.Code, appErrors.ErrRemoteWrite.Status, "failed to reorder notices")
	}
	s.invalidate(ctx)
	return s.List(ctx)
}

func (s *NoticeService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, "notices")
	}
}

// validateNoticeDate accepts ISO calendar dates only.
func validateNoticeDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	return nil
}
