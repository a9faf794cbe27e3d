package rediscache

import (
	"context"
	"testing"
	"time"

	"animal-tracker/internal/adapters/storage/memory"
	"animal-tracker/internal/domain/animals"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingRepo cuenta cuántas veces se llega al storage real.
type countingRepo struct {
	animals.Repository
	lists int
}

func (r *countingRepo) List(ctx context.Context) ([]animals.Record, error) {
	r.lists++
	return r.Repository.List(ctx)
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *countingRepo, *AnimalsCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	inner := &countingRepo{Repository: memory.NewAnimalRepo()}
	cache := New(inner, client, Options{TTL: time.Minute}, zap.NewNop())
	return mr, inner, cache
}

func TestAnimalsCache_ListHitsStorageOnce(t *testing.T) {
	mr, inner, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.Insert(ctx, animals.Record{ID: "a", Type: "Dog"})
	require.NoError(t, err)

	first, err := cache.List(ctx)
	require.NoError(t, err)
	second, err := cache.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.lists)
	assert.True(t, mr.Exists(DefaultKey))
}

func TestAnimalsCache_MutationsInvalidate(t *testing.T) {
	mr, inner, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.Insert(ctx, animals.Record{ID: "a", Type: "Dog"})
	require.NoError(t, err)
	_, err = cache.List(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(DefaultKey))

	n, err := cache.Update(ctx, animals.Record{ID: "a", Type: "Cat"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.False(t, mr.Exists(DefaultKey))

	items, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cat", items[0].Type)
	assert.Equal(t, 2, inner.lists)

	n, err = cache.Delete(ctx, "a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.False(t, mr.Exists(DefaultKey))

	items, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAnimalsCache_ZeroChangesKeepsEntry(t *testing.T) {
	mr, _, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.List(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(DefaultKey))

	n, err := cache.Update(ctx, animals.Record{ID: "ghost", Type: "Cat"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, mr.Exists(DefaultKey))
}

func TestAnimalsCache_RedisDown_FallsBackToStorage(t *testing.T) {
	mr, inner, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.Insert(ctx, animals.Record{ID: "a", Type: "Dog"})
	require.NoError(t, err)

	mr.Close()

	items, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, inner.lists)
}

func TestAnimalsCache_EntryExpires(t *testing.T) {
	mr, inner, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.List(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)
}

func TestAnimalsCache_FailedInvalidateBypassesCache(t *testing.T) {
	mr, inner, cache := setupTestRedis(t)
	ctx := context.Background()

	_, err := cache.Insert(ctx, animals.Record{ID: "a", Type: "Dog", Name: "Rex"})
	require.NoError(t, err)
	_, err = cache.List(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(DefaultKey))

	mr.SetError("LOADING redis is loading")
	n, err := cache.Update(ctx, animals.Record{ID: "a", Type: "Dog", Name: "Max"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	items, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Max", items[0].Name)

	// Redis vuelve con la entrada vieja todavía guardada: no se debe servir.
	mr.SetError("")
	items, err = cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Max", items[0].Name)
	assert.Equal(t, 3, inner.lists)

	// ya invalidado, el cache vuelve a servir
	items, err = cache.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Max", items[0].Name)
	assert.Equal(t, 3, inner.lists)
}
