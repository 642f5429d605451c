package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCache_SetAndGet(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("greeting", "hello")

	got, ok := c.Get("greeting")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestCache_Get_MissingKey(t *testing.T) {
	c := New[int](time.Minute)

	got, ok := c.Get("absent")
	if ok {
		t.Error("expected a miss for an absent key")
	}
	if got != 0 {
		t.Errorf("expected zero value, got %d", got)
	}
}

func TestCache_Get_ExpiredEntry(t *testing.T) {
	c := New[string](10 * time.Millisecond)

	c.Set("ephemeral", "value")
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("ephemeral"); ok {
		t.Error("expected a miss for an expired entry")
	}
	if c.Len() != 0 {
		t.Errorf("expected lazy eviction to remove the entry, len = %d", c.Len())
	}
}

func TestCache_Disabled(t *testing.T) {
	c := New[string](0)

	if c.Enabled() {
		t.Error("zero TTL should disable the cache")
	}

	c.Set("key", "value")
	if _, ok := c.Get("key"); ok {
		t.Error("disabled cache should never hit")
	}
	if c.Len() != 0 {
		t.Errorf("disabled cache should store nothing, len = %d", c.Len())
	}
}

func TestCache_Delete(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("key", "value")
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected a miss after delete")
	}

	// Deleting an absent key must not panic.
	c.Delete("absent")
}

func TestCache_Flush(t *testing.T) {
	c := New[int](time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}
	if c.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", c.Len())
	}

	c.Flush()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after flush, len = %d", c.Len())
	}
}

func TestCache_Stats(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("key", "value")
	c.Get("key")
	c.Get("key")
	c.Get("absent")

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := New[string](time.Minute)

	c.Set("key", "first")
	c.Set("key", "second")

	got, _ := c.Get("key")
	if got != "second" {
		t.Errorf("expected overwritten value, got %q", got)
	}
	if c.Len() != 1 {
		t.Errorf("overwrite should not grow the cache, len = %d", c.Len())
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%3)
			for j := 0; j < 100; j++ {
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != 3 {
		t.Errorf("expected 3 distinct keys, got %d", c.Len())
	}
}
