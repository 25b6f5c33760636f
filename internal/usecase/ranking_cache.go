package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RankingCache is the read-through cache used by the jobs-for-talent feed.
// Stale entries are acceptable: rankings carry no correctness contract, only
// freshness, and the TTL bounds the staleness window.
type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

func matchedJobsCacheKey(talentID uuid.UUID) string {
	return "match:jobs:" + talentID.String()
}
