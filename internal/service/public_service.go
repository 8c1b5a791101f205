package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/sunrise-school/cms-api/internal/models"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
)

type publicHeroLister interface {
	List(ctx context.Context, includeInactive bool) ([]models.HeroImage, error)
}

type publicGalleryLister interface {
	List(ctx context.Context, category string, includeInactive bool) ([]models.GalleryImage, error)
}

// PublicContentService serves the read-only site listings consumed by
// anonymous visitors. Only active rows are returned and responses are
// held in the cache until the next admin mutation invalidates them.
type PublicContentService struct {
	hero    publicHeroLister
	team    exportTeamLister
	gallery publicGalleryLister
	notices exportNoticeLister
	cache   *CacheService
	logger  *zap.Logger
}

// NewPublicContentService constructs the service.
func NewPublicContentService(hero publicHeroLister, team exportTeamLister, gallery publicGalleryLister, notices exportNoticeLister, cache *CacheService, logger *zap.Logger) *PublicContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PublicContentService{hero: hero, team: team, gallery: gallery, notices: notices, cache: cache, logger: logger}
}

// HeroImages returns active hero slides as a JSON snapshot.
func (s *PublicContentService) HeroImages(ctx context.Context) ([]byte, error) {
	return s.cached(ctx, "hero", func() (interface{}, error) {
		return s.hero.List(ctx, false)
	})
}

// TeamMembers returns active staff profiles as a JSON snapshot.
func (s *PublicContentService) TeamMembers(ctx context.Context) ([]byte, error) {
	return s.cached(ctx, "team", func() (interface{}, error) {
		return s.team.List(ctx, false)
	})
}

// GalleryImages returns active gallery photos as a JSON snapshot.
// Category filtered listings bypass the cache; the unfiltered grid is
// what the landing page fetches.
func (s *PublicContentService) GalleryImages(ctx context.Context, category string) ([]byte, error) {
	if category != "" {
		images, err := s.gallery.List(ctx, category, false)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list gallery images")
		}
		return json.Marshal(images)
	}
	return s.cached(ctx, "gallery", func() (interface{}, error) {
		return s.gallery.List(ctx, "", false)
	})
}

// Notices returns active notices as a JSON snapshot.
func (s *PublicContentService) Notices(ctx context.Context) ([]byte, error) {
	return s.cached(ctx, "notices", func() (interface{}, error) {
		return s.notices.List(ctx, false)
	})
}

func (s *PublicContentService) cached(ctx context.Context, tab string, load func() (interface{}, error)) ([]byte, error) {
	if payload, ok := s.cache.GetList(ctx, tab); ok {
		return payload, nil
	}
	rows, err := load()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list "+tab)
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode "+tab)
	}
	s.cache.SetList(ctx, tab, payload)
	return payload, nil
}
