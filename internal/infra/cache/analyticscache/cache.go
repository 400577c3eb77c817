package analyticscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BarberDashboard/pkg/metrics"
)

// Options параметры подключения к Redis
type Options struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewRedisClient создает клиент Redis и проверяет соединение
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("%w: addr is empty", ErrConnect)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	return rdb, nil
}

// Cache кэш ответов аналитики в Redis. Значения хранятся в JSON с TTL.
type Cache struct {
	rdb     RedisClient
	prefix  string
	ttl     time.Duration
	metrics Metrics
}

// New создает кэш. Ключи получают префикс prefix + ":".
func New(rdb RedisClient, prefix string, ttl time.Duration, metrics Metrics) *Cache {
	return &Cache{
		rdb:     rdb,
		prefix:  prefix,
		ttl:     ttl,
		metrics: metrics,
	}
}

// Get читает значение в dest. Возвращает false при промахе.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.ObserveCache(metrics.CacheMiss)
		return false, nil
	}
	if err != nil {
		c.metrics.ObserveCache(metrics.CacheError)
		return false, fmt.Errorf("%w: get %s: %v", ErrCommand, key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.metrics.ObserveCache(metrics.CacheError)
		return false, fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}

	c.metrics.ObserveCache(metrics.CacheHit)
	return true, nil
}

// Set сохраняет значение с TTL кэша
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, key, err)
	}

	if err := c.rdb.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCommand, key, err)
	}
	return nil
}

func (c *Cache) key(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// Nop кэш, используемый без Redis: всегда промах
type Nop struct{}

// Get всегда возвращает промах
func (Nop) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

// Set ничего не делает
func (Nop) Set(context.Context, string, interface{}) error {
	return nil
}
