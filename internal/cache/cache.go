// Package cache stores analysis results keyed by input content, so repeated
// or duplicated trace files are not re-analyzed. The arbiter core itself is
// cache-free; caching lives entirely at this outer layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for result caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from raw input bytes. Byte-identical inputs share
// a key; the classification pipeline is deterministic, so sharing is safe.
func Key(data []byte) string {
	hash := sha256.Sum256(data)
	return "astg:v1:" + hex.EncodeToString(hash[:])
}
