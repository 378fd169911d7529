package cache

import (
	"testing"
	"time"
)

func TestGetMissingKey(t *testing.T) {
	c := New[string](time.Minute)
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestPutThenGet(t *testing.T) {
	c := New[int](time.Minute)
	c.Put("k", 42)
	v, ok := c.Get("k")
	if !ok || v != 42 {
		t.Fatalf("expected hit with 42, got %v/%v", v, ok)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Now()
	c := New[string](5 * time.Minute)
	c.SetClock(func() time.Time { return now })

	c.Put("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(5*time.Minute - time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit just before TTL")
	}

	now = now.Add(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestOverwriteRefreshesTimestamp(t *testing.T) {
	now := time.Now()
	c := New[string](time.Minute)
	c.SetClock(func() time.Time { return now })

	c.Put("k", "old")
	now = now.Add(50 * time.Second)
	c.Put("k", "new")
	now = now.Add(30 * time.Second)

	v, ok := c.Get("k")
	if !ok || v != "new" {
		t.Fatalf("expected refreshed entry, got %v/%v", v, ok)
	}
}

func TestPurge(t *testing.T) {
	now := time.Now()
	c := New[string](time.Minute)
	c.SetClock(func() time.Time { return now })

	c.Put("old", "v")
	now = now.Add(2 * time.Minute)
	c.Put("fresh", "v")

	c.Purge()
	if c.Len() != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Fatal("fresh entry must survive purge")
	}
}
