package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/seralin/creatorlink/internal/models"
	"github.com/seralin/creatorlink/internal/monitoring"
)

const cacheType = "catalog"

// CachedCatalog is a read-through Redis cache in front of another catalog.
// Profile sets are stored as JSON per participant kind with a fixed TTL.
// Cache failures degrade to the inner catalog rather than failing the request.
type CachedCatalog struct {
	inner  Catalog
	client *redis.Client
	ttl    time.Duration
}

// NewCachedCatalog wraps a catalog with a Redis read-through cache
func NewCachedCatalog(inner Catalog, client *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(kind models.ParticipantKind) string {
	return fmt.Sprintf("catalog:%s", string(kind))
}

// FetchProfiles returns the cached profile set when present, otherwise falls
// through to the inner catalog and populates the cache.
func (c *CachedCatalog) FetchProfiles(ctx context.Context, kind models.ParticipantKind) ([]models.Profile, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	key := cacheKey(kind)
	start := time.Now()

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var profiles []models.Profile
		if jsonErr := json.Unmarshal(payload, &profiles); jsonErr == nil {
			monitoring.RecordCacheHit(cacheType)
			monitoring.RecordCatalogFetch(string(kind), "cache", time.Since(start), len(profiles))
			return profiles, nil
		}
		// Corrupt entry: drop it and refetch
		c.client.Del(ctx, key)
	} else if err != redis.Nil {
		log.Warn().Err(err).Str("key", key).Msg("Catalog cache read failed")
	}

	monitoring.RecordCacheMiss(cacheType)

	profiles, err := c.inner.FetchProfiles(ctx, kind)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(profiles); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			log.Warn().Err(setErr).Str("key", key).Msg("Catalog cache write failed")
		}
	}

	return profiles, nil
}

// Invalidate drops the cached profile set for a participant kind
func (c *CachedCatalog) Invalidate(ctx context.Context, kind models.ParticipantKind) error {
	return c.client.Del(ctx, cacheKey(kind)).Err()
}
