package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comandera-api/internal/domain/entity"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionStore_SetGetRemove(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	store := NewSessionStore(client, time.Minute)
	key := "session:" + uuid.NewString() + ":userCcode"

	_, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, key, "REST01"))
	v, ok, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "REST01", v)

	require.NoError(t, store.Remove(ctx, key))
	_, ok, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDraftStore_RoundTrip(t *testing.T) {
	client := getRedisClient(t)
	ctx := context.Background()
	store := NewDraftStore(client, time.Minute)
	sid := uuid.NewString()

	d, err := store.Load(ctx, sid)
	require.NoError(t, err)
	assert.True(t, d.IsEmpty())

	d.AddItem(&entity.Product{
		ID:          "p1",
		Name:        "Limonada",
		Price:       decimal.RequireFromString("4.50"),
		Category:    "Bebidas",
		Ingredients: []entity.Ingredient{{StockID: "s1", Name: "Limón", Quantity: 2}},
	})
	require.NoError(t, store.Save(ctx, sid, d))

	loaded, err := store.Load(ctx, sid)
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 1)
	assert.True(t, loaded.Total.Equal(decimal.RequireFromString("4.50")))
	assert.Equal(t, int64(2), loaded.Lines[0].Ingredients[0].Quantity)

	require.NoError(t, store.Delete(ctx, sid))
	loaded, err = store.Load(ctx, sid)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
