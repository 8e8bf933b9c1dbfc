package health

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (f *fakePinger) Ping() error { return f.err }

func TestCollect_AllConnected(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	report := Collect(context.Background(), rdb, &fakePinger{}, "test")
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, "test", report.Environment)
	assert.Equal(t, "connected", report.Dependencies["database"].Status)
	assert.Equal(t, "connected", report.Dependencies["redis"].Status)
}

func TestCollect_NothingConfigured(t *testing.T) {
	report := Collect(context.Background(), nil, nil, "development")
	assert.Equal(t, "degraded", report.Status)
	assert.Equal(t, "disconnected", report.Dependencies["database"].Status)
	assert.Equal(t, "disconnected", report.Dependencies["redis"].Status)
}

func TestCollect_DatabaseErrorDegrades(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	report := Collect(context.Background(), rdb, &fakePinger{err: errors.New("down")}, "test")
	assert.Equal(t, "degraded", report.Status)
	assert.Equal(t, "error", report.Dependencies["database"].Status)
	assert.Equal(t, "connected", report.Dependencies["redis"].Status)
}
