package analyticscache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberDashboard/pkg/metrics"
)

type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

type cacheCounter map[string]int

func (c cacheCounter) ObserveCache(result string) { c[result]++ }

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCache_SetGet(t *testing.T) {
	rdb := newFakeRedis()
	counter := cacheCounter{}
	cache := New(rdb, "dashboard", 5*time.Minute, counter)

	var got payload
	found, err := cache.Get(context.Background(), "period:biz:day", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(context.Background(), "period:biz:day", payload{Name: "x", Count: 3}))
	assert.Equal(t, 5*time.Minute, rdb.ttls["dashboard:period:biz:day"])

	found, err = cache.Get(context.Background(), "period:biz:day", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)

	assert.Equal(t, 1, counter[metrics.CacheMiss])
	assert.Equal(t, 1, counter[metrics.CacheHit])
}

func TestCache_Errors(t *testing.T) {
	rdb := newFakeRedis()
	counter := cacheCounter{}
	cache := New(rdb, "", time.Minute, counter)

	rdb.data["broken"] = "{not json"
	_, err := cache.Get(context.Background(), "broken", &payload{})
	assert.ErrorIs(t, err, ErrDecode)

	rdb.getErr = errors.New("connection refused")
	_, err = cache.Get(context.Background(), "any", &payload{})
	assert.ErrorIs(t, err, ErrCommand)

	assert.Equal(t, 2, counter[metrics.CacheError])

	err = cache.Set(context.Background(), "bad", make(chan int))
	assert.ErrorIs(t, err, ErrEncode)
}

func TestNop(t *testing.T) {
	var c Nop
	found, err := c.Get(context.Background(), "k", &payload{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(context.Background(), "k", payload{}))
}

func TestNewRedisClient_EmptyAddr(t *testing.T) {
	_, err := NewRedisClient(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrConnect)
}
