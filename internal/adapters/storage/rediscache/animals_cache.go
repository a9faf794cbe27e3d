// Package rediscache envuelve un animals.Repository con un cache cache-aside
// del listado completo en Redis. Toda mutación exitosa invalida la key, así el
// próximo List vuelve a leer del storage. Si la invalidación falla, el cache
// queda marcado como stale y List lo saltea hasta poder borrar la key.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"animal-tracker/internal/domain/animals"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	DefaultKey = "animals:list"
	DefaultTTL = 5 * time.Minute
)

type Options struct {
	Key string
	TTL time.Duration
}

type AnimalsCache struct {
	inner  animals.Repository
	client *redis.Client
	key    string
	ttl    time.Duration
	log    *zap.Logger

	// stale: hubo una mutación cuya invalidación falló.
	stale atomic.Bool
}

func New(inner animals.Repository, client *redis.Client, opts Options, log *zap.Logger) *AnimalsCache {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AnimalsCache{
		inner:  inner,
		client: client,
		key:    opts.Key,
		ttl:    opts.TTL,
		log:    log,
	}
}

func (c *AnimalsCache) List(ctx context.Context) ([]animals.Record, error) {
	if c.stale.Load() && !c.invalidate(ctx) {
		return c.inner.List(ctx)
	}

	raw, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var items []animals.Record
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		c.log.Warn("animals cache: corrupt entry, reloading", zap.String("key", c.key))
	case errors.Is(err, redis.Nil):
		// miss
	default:
		// Redis caído no debe tirar el listado: vamos directo al storage.
		c.log.Warn("animals cache: get failed", zap.Error(err))
	}

	items, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(items)
	if err == nil {
		if err := c.client.Set(ctx, c.key, b, c.ttl).Err(); err != nil {
			c.log.Warn("animals cache: set failed", zap.Error(err))
		}
	}
	return items, nil
}

func (c *AnimalsCache) Insert(ctx context.Context, a animals.Record) (string, error) {
	id, err := c.inner.Insert(ctx, a)
	if err != nil {
		return "", err
	}
	c.invalidate(ctx)
	return id, nil
}

func (c *AnimalsCache) Update(ctx context.Context, a animals.Record) (int64, error) {
	n, err := c.inner.Update(ctx, a)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		c.invalidate(ctx)
	}
	return n, nil
}

func (c *AnimalsCache) Delete(ctx context.Context, id string) (int64, error) {
	n, err := c.inner.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		c.invalidate(ctx)
	}
	return n, nil
}

// invalidate borra la key. Si falla marca el cache como stale y devuelve false.
func (c *AnimalsCache) invalidate(ctx context.Context) bool {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		c.stale.Store(true)
		c.log.Warn("animals cache: invalidate failed, bypassing cache", zap.String("key", c.key), zap.Error(err))
		return false
	}
	c.stale.Store(false)
	return true
}
