package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"asset-exchange-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const listingCacheKey = "listings:detailed"

// ListingCache implements ports.ListingCache: a short-lived JSON snapshot
// of the detailed marketplace view.
type ListingCache struct {
	client *goredis.Client
}

// NewListingCache creates a new Redis-backed listing cache.
func NewListingCache(client *goredis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get retrieves the cached snapshot. Returns nil, nil on a miss.
func (c *ListingCache) Get(ctx context.Context) (*domain.DetailedListings, error) {
	raw, err := c.client.Get(ctx, listingCacheKey).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis listing get: %w", err)
	}

	listings := &domain.DetailedListings{}
	if err := json.Unmarshal(raw, listings); err != nil {
		return nil, fmt.Errorf("decode cached listings: %w", err)
	}
	return listings, nil
}

// Set stores the snapshot with a TTL.
func (c *ListingCache) Set(ctx context.Context, listings *domain.DetailedListings, ttl time.Duration) error {
	raw, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}
	if err := c.client.Set(ctx, listingCacheKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis listing set: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot after any listing mutation.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, listingCacheKey).Err(); err != nil {
		return fmt.Errorf("redis listing del: %w", err)
	}
	return nil
}
