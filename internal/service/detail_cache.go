package service

import (
	"context"
	"encoding/json"
	"time"

	"edu_assessment_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
)

const detailCacheKeyPrefix = "assessment:detail:"

// DetailCache is a read-through cache of composed assessment views. Every
// write path touching an assessment invalidates its entry, so a cached view
// only ever differs from storage by at most the configured TTL after an
// external write. A nil cache is valid and caches nothing.
type DetailCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDetailCache(rdb *redis.Client, ttl time.Duration) *DetailCache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &DetailCache{rdb: rdb, ttl: ttl}
}

func (c *DetailCache) Get(ctx context.Context, assessmentID string) (*AssessmentDetailResponse, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, detailCacheKeyPrefix+assessmentID).Bytes()
	if err != nil {
		monitoring.DetailCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	var resp AssessmentDetailResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		monitoring.DetailCacheHits.WithLabelValues("miss").Inc()
		return nil, false
	}
	monitoring.DetailCacheHits.WithLabelValues("hit").Inc()
	return &resp, true
}

func (c *DetailCache) Set(ctx context.Context, assessmentID string, resp *AssessmentDetailResponse) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	// Best effort: a failed cache write never fails the request.
	c.rdb.Set(ctx, detailCacheKeyPrefix+assessmentID, raw, c.ttl)
}

func (c *DetailCache) Invalidate(ctx context.Context, assessmentID string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, detailCacheKeyPrefix+assessmentID)
}
