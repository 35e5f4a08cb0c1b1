package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestCache(size int, ttl time.Duration) (*LRUCache[string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRUCache[string](size, ttl)
	c.now = clock.now
	return c, clock
}

func TestLRUCache_GetSet(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", "alpha")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	c.Set("a", "again")
	v, _ = c.Get("a")
	assert.Equal(t, "again", v)
	assert.Equal(t, 1, c.Size())

	assert.Equal(t, Stats{Size: 1, Hits: 2, Misses: 1}, c.Stats())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	_, _ = c.Get("a") // b is now the oldest
	c.Set("c", "3")

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_Expiry(t *testing.T) {
	c, clock := newTestCache(10, time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	clock.t = clock.t.Add(30 * time.Second)
	c.Set("c", "3")

	clock.t = clock.t.Add(45 * time.Second)
	_, ok := c.Get("a")
	assert.False(t, ok, "a expired")
	assert.Equal(t, 1, c.CleanExpired(), "b expired, c still fresh")
	assert.Equal(t, 1, c.Size())

	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestLRUCache_Delete(t *testing.T) {
	c, _ := newTestCache(10, time.Minute)
	c.Set("a", "1")
	c.Delete("a")
	c.Delete("missing")
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_ZeroSizeStoresNothing(t *testing.T) {
	c, _ := newTestCache(0, time.Minute)
	c.Set("a", "1")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_ConcurrentAccess(t *testing.T) {
	c := NewLRUCache[int](64, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("%d-%d", g, i%32)
				c.Set(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Size(), 64)
}

func TestKey(t *testing.T) {
	a := Key("tax-estimate", []byte(`{"income":"50000"}`))
	b := Key("tax-estimate", []byte(`{"income":"50000"}`))
	c := Key("safe-spend", []byte(`{"income":"50000"}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
