package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key([]byte("trace bytes"))
	k2 := Key([]byte("trace bytes"))
	k3 := Key([]byte("other bytes"))

	if !strings.HasPrefix(k1, "astg:v1:") {
		t.Errorf("key must carry the namespace prefix, got %s", k1)
	}
	if k1 != k2 {
		t.Error("identical inputs must share a key")
	}
	if k1 == k3 {
		t.Error("distinct inputs must not share a key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := Key([]byte("input"))
	if _, found := c.Get(key); found {
		t.Error("empty cache must miss")
	}

	if err := c.Set(key, []byte("report"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get(key)
	if !found || !bytes.Equal(val, []byte("report")) {
		t.Errorf("expected stored value, got %q found=%v", val, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("deleted key must miss")
	}

	_ = c.Set(Key([]byte("a")), []byte("1"), 0)
	_ = c.Set(Key([]byte("b")), []byte("2"), 0)
	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get(Key([]byte("a"))); found {
		t.Error("cleared cache must miss")
	}
}

func TestDiskCache(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	key := Key([]byte("input"))
	if err := c.Set(key, []byte("report"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}

	val, found := c.Get(key)
	if !found || !bytes.Equal(val, []byte("report")) {
		t.Errorf("expected stored value, got %q found=%v", val, found)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("deleted key must miss")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	key := Key([]byte("input"))
	if err := c.Set(key, []byte("report"), time.Nanosecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, found := c.Get(key); found {
		t.Error("expired entry must miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	seed := NewDiskCache(dir, time.Minute)
	key := Key([]byte("input"))
	if err := seed.Set(key, []byte("report"), 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	c := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found := c.Get(key)
	if !found || !bytes.Equal(val, []byte("report")) {
		t.Fatalf("expected disk hit through the layered cache")
	}

	// A second read is served from memory even if the disk copy disappears.
	if err := seed.Delete(key); err != nil {
		t.Fatalf("delete disk copy: %v", err)
	}
	if _, found := c.Get(key); !found {
		t.Error("expected promoted entry in memory layer")
	}
}

func TestLayeredCache_SetAndClear(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Minute)

	key := Key([]byte("input"))
	if err := c.Set(key, []byte("report"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get(key); !found {
		t.Error("expected hit after set")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("cleared cache must miss")
	}
}
