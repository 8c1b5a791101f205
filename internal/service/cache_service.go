package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "cms:public:"

// CacheService keeps rendered public listings in Redis so anonymous
// traffic rarely touches the database. A nil Redis client disables
// caching entirely; every method degrades to a miss or no-op.
type CacheService struct {
	client  *redis.Client
	metrics *MetricsService
	logger  *zap.Logger
	ttl     time.Duration
}

// NewCacheService constructs the service.
func NewCacheService(client *redis.Client, metrics *MetricsService, logger *zap.Logger, ttl time.Duration) *CacheService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CacheService{client: client, metrics: metrics, logger: logger, ttl: ttl}
}

// GetList returns the cached JSON snapshot for a tab, if present.
func (s *CacheService) GetList(ctx context.Context, tab string) ([]byte, bool) {
	if s == nil || s.client == nil {
		return nil, false
	}
	payload, err := s.client.Get(ctx, cacheKeyPrefix+tab).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("cache read failed", zap.String("tab", tab), zap.Error(err))
		}
		s.metrics.RecordCacheOperation(false)
		return nil, false
	}
	s.metrics.RecordCacheOperation(true)
	return payload, true
}

// SetList stores a JSON snapshot for a tab with the configured TTL.
func (s *CacheService) SetList(ctx context.Context, tab string, payload []byte) {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.Set(ctx, cacheKeyPrefix+tab, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("cache write failed", zap.String("tab", tab), zap.Error(err))
	}
}

// Invalidate drops the cached snapshot for a tab after a mutation.
func (s *CacheService) Invalidate(ctx context.Context, tab string) {
	if s == nil || s.client == nil {
		return
	}
	if err := s.client.Del(ctx, cacheKeyPrefix+tab).Err(); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("tab", tab), zap.Error(err))
	}
}
