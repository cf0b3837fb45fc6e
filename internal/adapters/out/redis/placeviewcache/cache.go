// Package placeviewcache keeps formatted place views in Redis.
package placeviewcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "freight:place-view:"

// DefaultTTL is used when the cache is created with a non-positive TTL.
const DefaultTTL = 10 * time.Minute

type entry struct {
	Reference string `json:"reference"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Nation    string `json:"nation"`
}

type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func New(client redis.UniversalClient, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, placeID kernel.UUID) (place.View, bool, error) {
	raw, err := c.client.Get(ctx, key(placeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return place.View{}, false, nil
	}
	if err != nil {
		return place.View{}, false, fmt.Errorf("get place view %s: %w", placeID, err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return place.View{}, false, fmt.Errorf("decode place view %s: %w", placeID, err)
	}
	return place.View{
		Reference: kernel.Reference(e.Reference),
		Street:    e.Street,
		City:      e.City,
		Nation:    e.Nation,
	}, true, nil
}

func (c *Cache) Set(ctx context.Context, placeID kernel.UUID, view place.View) error {
	raw, err := json.Marshal(entry{
		Reference: string(view.Reference),
		Street:    view.Street,
		City:      view.City,
		Nation:    view.Nation,
	})
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key(placeID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set place view %s: %w", placeID, err)
	}
	return nil
}

func key(placeID kernel.UUID) string {
	return keyPrefix + placeID.String()
}
