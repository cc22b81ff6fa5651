package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewSharded(t *testing.T) {
	c := NewSharded[uint64, int](160, Uint64Hasher)
	if got := c.Stats().Capacity; got != 160 {
		t.Errorf("expected total capacity 160, got %d", got)
	}

	c = NewSharded[uint64, int](0, Uint64Hasher)
	for i := range uint64(1000) {
		c.Set(i, int(i))
	}
	st := c.Stats()
	if st.Capacity != 0 || st.Len != 1000 || st.Evictions != 0 {
		t.Errorf("unbounded cache stats = %+v, want 1000 entries and no evictions", st)
	}
}

func TestShardedGetSetDelete(t *testing.T) {
	c := NewSharded[uint64, string](64, Uint64Hasher)

	c.Set(1, "one")
	c.Set(17, "seventeen") // same shard as 1

	if v, ok := c.Get(1); !ok || v != "one" {
		t.Errorf("Get(1) = %q, %v, want one, true", v, ok)
	}
	if v, ok := c.Get(17); !ok || v != "seventeen" {
		t.Errorf("Get(17) = %q, %v, want seventeen, true", v, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Error("expected 2 to not exist")
	}

	if !c.Delete(1) {
		t.Error("expected Delete to return true for existing key")
	}
	if c.Delete(1) {
		t.Error("expected Delete to return false for deleted key")
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected 0 entries after clear, got %d", c.Len())
	}
}

func TestShardedGetOrLoad(t *testing.T) {
	c := NewSharded[uint64, int](64, Uint64Hasher)
	calls := 0
	load := func() (int, error) {
		calls++
		return 100, nil
	}

	for range 3 {
		v, err := c.GetOrLoad(5, load)
		if err != nil {
			t.Fatalf("GetOrLoad() error = %v", err)
		}
		if v != 100 {
			t.Errorf("GetOrLoad() = %d, want 100", v)
		}
	}
	if calls != 1 {
		t.Errorf("expected load called once, got %d", calls)
	}

	stats := c.Stats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("expected 2 hits and 1 miss, got hits=%d misses=%d", stats.Hits, stats.Misses)
	}
}

func TestShardedGetOrLoadError(t *testing.T) {
	c := NewSharded[uint64, int](64, Uint64Hasher)
	errBoom := errors.New("boom")

	_, err := c.GetOrLoad(1, func() (int, error) { return 0, errBoom })
	if !errors.Is(err, errBoom) {
		t.Fatalf("GetOrLoad() error = %v, want %v", err, errBoom)
	}
	if c.Len() != 0 {
		t.Errorf("expected failed load not to be cached, got %d entries", c.Len())
	}

	v, err := c.GetOrLoad(1, func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("GetOrLoad() after error = %d, %v, want 7, nil", v, err)
	}
}

func TestShardedGetOrLoadConcurrent(t *testing.T) {
	c := NewSharded[uint64, *int](64, Uint64Hasher)
	var calls atomic.Int32
	release := make(chan struct{})

	const workers = 32
	results := make([]*int, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrLoad(42, func() (*int, error) {
				calls.Add(1)
				<-release
				n := 42
				return &n, nil
			})
			if err != nil {
				t.Errorf("GetOrLoad() error = %v", err)
			}
			results[i] = v
		}(i)
	}
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected a single load, got %d", got)
	}
	for i, r := range results {
		if r != results[0] {
			t.Errorf("worker %d got a different value pointer", i)
		}
	}
}

func TestShardedEviction(t *testing.T) {
	// One entry per shard: keys 0 and 16 collide.
	c := NewSharded[uint64, int](ShardCount, Uint64Hasher)
	c.Set(0, 0)
	c.Set(16, 16)

	if _, ok := c.Get(0); ok {
		t.Error("expected 0 to be evicted by 16")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("expected 1 eviction, got %d", got)
	}
}

func TestShardedShardLen(t *testing.T) {
	c := NewSharded[uint64, int](1024, Uint64Hasher)
	for i := range uint64(100) {
		c.Set(i, int(i))
	}

	lens := c.ShardLen()
	total := 0
	for _, l := range lens {
		total += l
	}
	if total != c.Len() {
		t.Errorf("shard lengths sum %d != Len() %d", total, c.Len())
	}
	if lens[0] != 7 {
		t.Errorf("expected 7 entries in shard 0, got %d", lens[0])
	}
}

func TestShardedResetStats(t *testing.T) {
	c := NewSharded[uint64, int](64, Uint64Hasher)
	c.Set(1, 1)
	c.Get(1)
	c.Get(2)

	c.ResetStats()

	stats := c.Stats()
	if stats.Hits != 0 || stats.Misses != 0 || stats.Evictions != 0 {
		t.Errorf("expected all stats to be 0 after reset, got hits=%d misses=%d evictions=%d",
			stats.Hits, stats.Misses, stats.Evictions)
	}
}
