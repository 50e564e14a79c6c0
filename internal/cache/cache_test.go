package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("down")
}
func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("down")
}

func TestGetOrLoad_HitAfterMiss(t *testing.T) {
	ctx := context.Background()
	l := &Loader{Cache: NewMemory(), TTL: time.Minute}
	calls := 0
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	for i := 0; i < 3; i++ {
		v, err := GetOrLoad(ctx, l, Key("team:1", 7), load)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, v)
	}
	assert.Equal(t, 1, calls, "повторные чтения должны идти из кэша")

	// новая ревизия — новый ключ, значит снова load
	_, err := GetOrLoad(ctx, l, Key("team:1", 8), load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_FallsThrough(t *testing.T) {
	ctx := context.Background()
	calls := 0
	load := func(context.Context) (string, error) {
		calls++
		return "fresh", nil
	}

	v, err := GetOrLoad(ctx, &Loader{Cache: failingCache{}}, "k", load)
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)

	v, err = GetOrLoad(ctx, nil, "k", load)
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_LoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	l := &Loader{Cache: mem, TTL: time.Minute}
	boom := errors.New("boom")

	_, err := GetOrLoad(ctx, l, "k", func(context.Context) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	_, ok, _ := mem.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemory_TTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemory()
	mem.now = func() time.Time { return now }

	require.NoError(t, mem.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, mem.Set(ctx, "b", []byte("2"), 0))

	now = now.Add(2 * time.Minute)
	_, ok, _ := mem.Get(ctx, "a")
	assert.False(t, ok, "запись должна истечь")
	_, ok, _ = mem.Get(ctx, "b")
	assert.True(t, ok, "ttl=0 — без срока")

	require.NoError(t, mem.Set(ctx, "c", []byte("3"), time.Second))
	now = now.Add(time.Hour)
	assert.Equal(t, 1, mem.Purge())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "survivor:dashboard:5@12", Key("dashboard:5", 12))
}
