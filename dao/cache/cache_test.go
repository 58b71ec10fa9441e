package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundtrip(t *testing.T) {
	c := NewMemoryCache(16)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	val, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("v"), val)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache(16)

	_, hit, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCacheWithClock(16, func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 5*time.Minute))

	_, hit, _ := c.Get(ctx, "k")
	assert.True(t, hit)

	// 过了 TTL 以后视同未命中
	now = now.Add(6 * time.Minute)
	_, hit, _ = c.Get(ctx, "k")
	assert.False(t, hit)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	c := NewMemoryCache(16)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Invalidate(ctx, "k"))

	_, hit, _ := c.Get(ctx, "k")
	assert.False(t, hit)
}

func TestGetOrLoadMissThenHit(t *testing.T) {
	c := NewMemoryCache(16)
	ctx := context.Background()
	calls := 0
	loader := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	got, err := GetOrLoad(ctx, c, "list", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, calls)

	// 第二次命中缓存，loader 不再执行
	got, err = GetOrLoad(ctx, c, "list", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoadLoaderError(t *testing.T) {
	c := NewMemoryCache(16)
	wantErr := errors.New("db down")

	_, err := GetOrLoad(context.Background(), c, "k", time.Minute, func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// 失败结果不回填
	_, hit, _ := c.Get(context.Background(), "k")
	assert.False(t, hit)
}

func TestGetOrLoadBadPayload(t *testing.T) {
	c := NewMemoryCache(16)
	ctx := context.Background()

	// 缓存里是解不开的数据，按未命中处理并清掉
	require.NoError(t, c.Set(ctx, "k", []byte("{not json"), time.Minute))

	got, err := GetOrLoad(ctx, c, "k", time.Minute, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	// 回填过后缓存里是好数据
	val, hit, _ := c.Get(ctx, "k")
	assert.True(t, hit)
	assert.Equal(t, []byte("42"), val)
}
