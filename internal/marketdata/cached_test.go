package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how often the inner source was consulted.
type countingSource struct {
	calls int
	price decimal.Decimal
	err   error
}

func (c *countingSource) Quote(_ context.Context, symbol string) (Quote, error) {
	c.calls++
	if c.err != nil {
		return Quote{}, c.err
	}
	return Quote{Symbol: symbol, Price: c.price, AsOf: time.Now()}, nil
}

func setupCacheTest(t *testing.T) (*CachedSource, *countingSource, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	inner := &countingSource{price: decimal.NewFromFloat(150.25)}
	return &CachedSource{Inner: inner, Rdb: rdb, TTL: time.Minute}, inner, mr
}

func TestCachedQuote_SecondHitServedFromCache(t *testing.T) {
	src, inner, _ := setupCacheTest(t)
	ctx := context.Background()

	first, err := src.Quote(ctx, "AAPL")
	require.NoError(t, err)
	second, err := src.Quote(ctx, "AAPL")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.True(t, first.Price.Equal(second.Price))
}

func TestCachedQuote_ExpiredEntryRefetches(t *testing.T) {
	src, inner, mr := setupCacheTest(t)
	ctx := context.Background()

	_, err := src.Quote(ctx, "AAPL")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = src.Quote(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedQuote_RedisDownFallsThrough(t *testing.T) {
	src, inner, mr := setupCacheTest(t)
	mr.Close()

	q, err := src.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedQuote_InnerFailurePropagates(t *testing.T) {
	src, inner, _ := setupCacheTest(t)
	inner.err = ErrPriceUnavailable

	_, err := src.Quote(context.Background(), "AAPL")
	assert.True(t, errors.Is(err, ErrPriceUnavailable))
}

func TestCachedQuote_NilRedisClient(t *testing.T) {
	inner := &countingSource{price: decimal.NewFromFloat(99.99)}
	src := &CachedSource{Inner: inner, TTL: time.Minute}

	_, err := src.Quote(context.Background(), "MSFT")
	require.NoError(t, err)
	_, err = src.Quote(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
