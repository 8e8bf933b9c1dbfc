package marketdata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CachedSource puts a Redis TTL cache in front of another Source. Redis
// being down or holding garbage degrades to a cache miss; the inner source
// still answers, so quotes never fail because of the cache alone.
type CachedSource struct {
	Inner Source
	Rdb   *redis.Client
	TTL   time.Duration
}

func cacheKey(symbol string) string {
	return "quote:" + symbol
}

func (c *CachedSource) Quote(ctx context.Context, symbol string) (Quote, error) {
	if c.Rdb != nil {
		raw, err := c.Rdb.Get(ctx, cacheKey(symbol)).Result()
		if err == nil {
			var q Quote
			if err := json.Unmarshal([]byte(raw), &q); err == nil {
				return q, nil
			}
		} else if err != redis.Nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("quote cache read failed")
		}
	}

	q, err := c.Inner.Quote(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}

	if c.Rdb != nil {
		if raw, err := json.Marshal(q); err == nil {
			if err := c.Rdb.Set(ctx, cacheKey(q.Symbol), raw, c.TTL).Err(); err != nil {
				log.Warn().Err(err).Str("symbol", q.Symbol).Msg("quote cache write failed")
			}
		}
	}
	return q, nil
}
