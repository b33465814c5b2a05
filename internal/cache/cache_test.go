package cache

import (
	"testing"
	"time"
)

func newTestCache(ttl time.Duration) (*Cache, *time.Time) {
	c := New(ttl)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCacheGetSet(t *testing.T) {
	c, _ := newTestCache(10 * time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for absent key")
	}

	c.Set("bankaccounts:id:1", "value")

	got, ok := c.Get("bankaccounts:id:1")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if got != "value" {
		t.Fatalf("expected %q, got %v", "value", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	c, now := newTestCache(10 * time.Minute)

	c.Set("key", 42)

	*now = now.Add(11 * time.Minute)
	if _, ok := c.Get("key"); ok {
		t.Fatal("expected entry to expire after TTL")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry to be removed, len=%d", c.Len())
	}
}

func TestCacheSlidingExpiration(t *testing.T) {
	c, now := newTestCache(10 * time.Minute)

	c.Set("key", 42)

	// Read every 6 minutes; each hit renews the TTL so the entry must
	// survive well past the original deadline.
	for i := 0; i < 5; i++ {
		*now = now.Add(6 * time.Minute)
		if _, ok := c.Get("key"); !ok {
			t.Fatalf("expected hit at read %d, sliding TTL should renew", i)
		}
	}

	*now = now.Add(11 * time.Minute)
	if _, ok := c.Get("key"); ok {
		t.Fatal("expected expiry once reads stop")
	}
}

func TestCacheSetTTLOverridesDefault(t *testing.T) {
	c, now := newTestCache(10 * time.Minute)

	c.SetTTL("tx", "short-lived", 5*time.Minute)

	*now = now.Add(6 * time.Minute)
	if _, ok := c.Get("tx"); ok {
		t.Fatal("expected entry with 5m TTL to expire after 6m")
	}
}

func TestCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(10 * time.Minute)

	c.Set("branches:all", "list")
	c.Set("branches:id:1", "one")
	c.Set("branches:bank:2", "by-bank")
	c.Set("customers:all", "customers")

	c.Invalidate("branches:id:1")
	if _, ok := c.Get("branches:id:1"); ok {
		t.Fatal("expected invalidated key to miss")
	}

	c.InvalidatePrefix("branches:")
	if _, ok := c.Get("branches:all"); ok {
		t.Fatal("expected list key to be invalidated by prefix")
	}
	if _, ok := c.Get("branches:bank:2"); ok {
		t.Fatal("expected bank-scoped key to be invalidated by prefix")
	}
	if _, ok := c.Get("customers:all"); !ok {
		t.Fatal("expected unrelated prefix to survive")
	}
}
