package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creatorhub/userform-api/internal/api/metrics"
	"github.com/creatorhub/userform-api/internal/core/domain"
)

const (
	listingKey = "forms:listing"
	listingTTL = 30 * time.Second
)

// ListingCache caches the serialized form listing in Redis. The TTL keeps
// the window between store and cache small; writes invalidate eagerly.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context) ([]*domain.FormSubmission, error) {
	raw, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}

	var forms []*domain.FormSubmission
	if err := json.Unmarshal(raw, &forms); err != nil {
		return nil, fmt.Errorf("listing cache decode: %w", err)
	}

	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return forms, nil
}

// Set stores the listing with the cache TTL.
func (c *ListingCache) Set(ctx context.Context, forms []*domain.FormSubmission) error {
	raw, err := json.Marshal(forms)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	return c.client.Set(ctx, listingKey, raw, listingTTL).Err()
}

// Invalidate drops the cached listing.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingKey).Err()
}
