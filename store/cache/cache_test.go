package cache

import (
	"context"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(Config{DefaultTTL: time.Minute})
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "a", 1)
	got, ok := c.Get(ctx, "a")
	if !ok || got.(int) != 1 {
		t.Fatalf("Get(a) = %v, %v; want 1, true", got, ok)
	}

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("Get(missing) should return false")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(Config{DefaultTTL: time.Minute})
	defer c.Close()
	ctx := context.Background()

	c.SetWithTTL("a", 1, -time.Second)
	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("expired entry should not be returned")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(Config{DefaultTTL: time.Minute})
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "a", 1)
	c.Delete(ctx, "a")
	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("deleted entry should not be returned")
	}
}

func TestCacheMaxItems(t *testing.T) {
	evicted := 0
	c := New(Config{
		DefaultTTL: time.Minute,
		MaxItems:   2,
		OnEviction: func(string, any) { evicted++ },
	})
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "a", 1)
	c.Set(ctx, "b", 2)
	c.Set(ctx, "c", 3)

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	if evicted != 1 {
		t.Fatalf("evicted = %d, want 1", evicted)
	}
}

func TestCacheClear(t *testing.T) {
	c := New(Config{DefaultTTL: time.Minute})
	defer c.Close()
	ctx := context.Background()

	c.Set(ctx, "a", 1)
	c.Set(ctx, "b", 2)
	c.Clear(ctx)
	if c.Size() != 0 {
		t.Fatalf("Size() = %d after Clear, want 0", c.Size())
	}
}
