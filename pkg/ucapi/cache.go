package ucapi

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/unifiedcatalog-io/ucapi/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrCacheKeyNotFound  = errors.New("key not found in cache")
	ErrCacheEntryExpired = errors.New("cache entry expired")
)

// CacheEntry is a single cached response.
type CacheEntry struct {
	Data      []byte
	ExpiresAt time.Time
	ETag      string
	CreatedAt time.Time
}

// Expired reports whether the entry is past its expiration time.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Cache is a pluggable backend for cached API responses.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// CacheOptions holds common options applied to any backend.
type CacheOptions struct {
	// TTL is the default time-to-live for cached entries.
	TTL time.Duration

	// MaxSize is the maximum number of items in the cache.
	MaxSize int

	// EnableETags enables conditional requests with If-None-Match.
	EnableETags bool
}

// DefaultCacheOptions returns the default cache options.
func DefaultCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:         constants.DefaultCacheTTL,
		MaxSize:     constants.DefaultCacheSize,
		EnableETags: true,
	}
}

// MemoryCache is an in-memory cache with bounded size. The oldest entry is
// evicted when the bound is reached. Expired entries are swept lazily on
// writes once cleanupEvery has elapsed, so the cache needs no janitor
// goroutine.
type MemoryCache struct {
	mu           sync.Mutex
	entries      map[string]*CacheEntry
	order        []string
	maxSize      int
	cleanupEvery time.Duration
	lastCleanup  time.Time
}

// NewMemoryCache creates a memory cache holding at most maxSize entries.
func NewMemoryCache(maxSize int) *MemoryCache {
	if maxSize <= 0 {
		maxSize = constants.DefaultCacheSize
	}

	return &MemoryCache{
		entries: make(map[string]*CacheEntry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry. Expired entries are removed and reported as such.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheKeyNotFound
	}

	if entry.Expired() {
		c.remove(key)

		return nil, ErrCacheEntryExpired
	}

	return entry, nil
}

// Set stores an entry, evicting the oldest entry when the cache is full.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cleanupEvery > 0 && time.Since(c.lastCleanup) >= c.cleanupEvery {
		c.cleanup()
	}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry

		return nil
	}

	if len(c.entries) >= c.maxSize && len(c.order) > 0 {
		c.remove(c.order[0])
	}

	c.entries[key] = entry
	c.order = append(c.order, key)

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remove(key)

	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*CacheEntry)
	c.order = nil

	return nil
}

// Has reports whether a non-expired entry exists for the key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]

	return ok && !entry.Expired()
}

// SetCleanupInterval enables the lazy expiry sweep on writes.
func (c *MemoryCache) SetCleanupInterval(interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupEvery = interval
	c.lastCleanup = time.Now()
}

// Cleanup removes all expired entries.
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanup()
}

// cleanup removes expired entries. Callers must hold the mutex.
func (c *MemoryCache) cleanup() {
	for key, entry := range c.entries {
		if entry.Expired() {
			c.remove(key)
		}
	}

	c.lastCleanup = time.Now()
}

// remove deletes an entry and its order slot. Callers must hold the mutex.
func (c *MemoryCache) remove(key string) {
	delete(c.entries, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)

			break
		}
	}
}

// CacheStats tracks aggregate cache usage.
type CacheStats struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// GetHitRate returns the fraction of lookups served from cache.
func (s *CacheStats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// CacheManager wraps a Cache with key construction, default TTL handling,
// and hit/miss statistics.
type CacheManager struct {
	cache      Cache
	logger     Logger
	defaultTTL time.Duration

	mu    sync.Mutex
	stats CacheStats
}

// NewCacheManager creates a manager over the given backend. A nil cache
// disables storage but keeps key construction and statistics working.
func NewCacheManager(cache Cache, logger Logger) *CacheManager {
	if cache == nil {
		cache = NewNoOpCache()
	}

	return &CacheManager{
		cache:      cache,
		logger:     logger,
		defaultTTL: constants.DefaultCacheTTL,
	}
}

// GetCacheKey builds a cache key from the request method, path, and query
// parameters. Parameters are sorted so equivalent requests share a key.
func (m *CacheManager) GetCacheKey(method, path string, params map[string]string) string {
	if len(params) == 0 {
		return method + ":" + path
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	return method + ":" + path + ":" + strings.Join(pairs, "&")
}

// Get retrieves cached data, recording a hit or miss.
func (m *CacheManager) Get(ctx context.Context, key string) ([]byte, error) {
	entry, err := m.GetEntry(ctx, key)
	if err != nil {
		return nil, err
	}

	return entry.Data, nil
}

// GetEntry retrieves the full cached entry, recording a hit or miss.
func (m *CacheManager) GetEntry(ctx context.Context, key string) (*CacheEntry, error) {
	entry, err := m.cache.Get(ctx, key)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.stats.Misses++

		return nil, err
	}

	m.stats.Hits++

	return entry, nil
}

// Set stores data under the key with the given TTL. A non-positive TTL uses
// the manager default.
func (m *CacheManager) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return m.SetWithETag(ctx, key, data, "", ttl)
}

// SetWithETag stores data together with its ETag.
func (m *CacheManager) SetWithETag(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	now := time.Now()
	entry := &CacheEntry{
		Data:      data,
		ExpiresAt: now.Add(ttl),
		ETag:      etag,
		CreatedAt: now,
	}

	err := m.cache.Set(ctx, key, entry)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("cache set failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}

		return err
	}

	m.mu.Lock()
	m.stats.Sets++
	m.mu.Unlock()

	return nil
}

// Invalidate removes the cached entry for the key.
func (m *CacheManager) Invalidate(ctx context.Context, key string) error {
	return m.cache.Delete(ctx, key)
}

// GetStats returns a snapshot of the cache statistics.
func (m *CacheManager) GetStats() *CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.stats

	return &stats
}

// CachingPolicy decides which requests and responses are cacheable.
type CachingPolicy struct {
	CacheGET    bool
	CachePOST   bool
	CacheErrors bool

	// IncludePaths, when non-empty, restricts caching to matching paths.
	IncludePaths []string

	// ExcludePaths removes matching paths from caching.
	ExcludePaths []string
}

// DefaultCachingPolicy caches successful GET responses. Relationship listings
// are excluded because Add and Delete would leave them stale.
func DefaultCachingPolicy() *CachingPolicy {
	return &CachingPolicy{
		CacheGET:     true,
		ExcludePaths: []string{"/relationships"},
	}
}

// ShouldCache reports whether a response for the method, path, and status
// code should be cached under this policy.
func (p *CachingPolicy) ShouldCache(method, path string, statusCode int) bool {
	switch method {
	case http.MethodGet:
		if !p.CacheGET {
			return false
		}
	case http.MethodPost:
		if !p.CachePOST {
			return false
		}
	default:
		return false
	}

	if !p.CacheErrors && statusCode >= http.StatusBadRequest {
		return false
	}

	if len(p.IncludePaths) > 0 {
		for _, include := range p.IncludePaths {
			if strings.Contains(path, include) {
				return true
			}
		}

		return false
	}

	for _, exclude := range p.ExcludePaths {
		if strings.Contains(path, exclude) {
			return false
		}
	}

	return true
}

// CacheInterceptor returns interceptors that record cache lookups on the way
// out and store cacheable responses on the way back.
func CacheInterceptor(manager *CacheManager, policy *CachingPolicy) (RequestInterceptor, ResponseInterceptor) {
	requestInterceptor := func(ctx context.Context, req *Request) error {
		if !policy.ShouldCache(req.Method, req.Path, http.StatusOK) {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)

		entry, err := manager.GetEntry(ctx, key)
		if err != nil {
			return nil
		}

		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata["cache_entry"] = entry

		return nil
	}

	responseInterceptor := func(ctx context.Context, req *Request, resp *Response) error {
		if !policy.ShouldCache(req.Method, req.Path, resp.StatusCode) {
			return nil
		}

		if resp.Error != nil {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)

		return manager.SetWithETag(ctx, key, resp.Body, resp.Headers.Get("ETag"), 0)
	}

	return requestInterceptor, responseInterceptor
}

// ConditionalRequestInterceptor adds If-None-Match from the cached ETag so
// the service can answer 304 Not Modified for unchanged entities.
func ConditionalRequestInterceptor(manager *CacheManager) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Method != http.MethodGet {
			return nil
		}

		key := manager.GetCacheKey(req.Method, req.Path, nil)

		entry, err := manager.GetEntry(ctx, key)
		if err != nil || entry.ETag == "" {
			return nil
		}

		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set("If-None-Match", entry.ETag)

		return nil
	}
}
