// Package cache stores rendered chart artifacts.
//
// A [Cache] is a byte-oriented key/value store with optional expiry. Four
// backends are provided:
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a Redis server, for the shared HTTP service
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: stores nothing (caching disabled)
//
// [Open] picks a backend from a URL. Keys are built by a [Keyer] so that
// every input that changes the output bytes also changes the key.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is the storage interface used by the pipeline and the HTTP service.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// A missing or expired key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases connections held by the backend.
	Close() error
}

// ArtifactKeyOpts are the render settings that affect an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Engine    string `json:"engine"`
	ThemeHash string `json:"theme_hash,omitempty"`
	Raw       bool   `json:"raw,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for one rendered artifact of a chart spec.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes every key component.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256>" over the spec hash and options.
func (DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", specHash, opts)
}

// ScopedKeyer prepends a fixed namespace to every key, so that several
// deployments can share one Redis or MongoDB backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey returns the inner key with the prefix prepended.
func (k *ScopedKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specHash, opts)
}
