package network

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultMaxAge applies when a response carries no freshness headers.
const DefaultMaxAge = 5 * time.Minute

// CacheEntry is a cached response with its validators.
type CacheEntry struct {
	Response     *Response
	ETag         string
	LastModified string
	MaxAge       time.Duration
	Expires      time.Time
	StoredAt     time.Time
}

// Expired reports whether the entry needs revalidation.
func (e *CacheEntry) Expired() bool {
	if !e.Expires.IsZero() {
		return !time.Now().Before(e.Expires)
	}
	return time.Since(e.StoredAt) >= e.MaxAge
}

// Cache is a bounded in-memory response cache keyed by URL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*CacheEntry
	maxSize int
}

// NewCache returns a cache holding at most maxSize entries.
func NewCache(maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &Cache{entries: make(map[string]*CacheEntry), maxSize: maxSize}
}

// Get returns the entry stored for url, fresh or not.
func (c *Cache) Get(url string) (*CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[url]
	return e, ok
}

// Set stores resp under url using the freshness rules in headers.
// no-store responses are not kept.
func (c *Cache) Set(url string, resp *Response, headers http.Header) {
	cc := headers.Get("Cache-Control")
	if hasDirective(cc, "no-store") {
		c.Delete(url)
		return
	}
	e := &CacheEntry{
		Response:     resp,
		ETag:         headers.Get("ETag"),
		LastModified: headers.Get("Last-Modified"),
		MaxAge:       DefaultMaxAge,
		StoredAt:     time.Now(),
	}
	if age, ok := maxAge(cc); ok {
		e.MaxAge = age
	} else if hasDirective(cc, "no-cache") {
		e.MaxAge = 0
	} else if exp := headers.Get("Expires"); exp != "" {
		if t, err := http.ParseTime(exp); err == nil {
			e.Expires = t
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[url]; !ok && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[url] = e
}

// Delete drops the entry for url.
func (c *Cache) Delete(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, url)
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) evictOldest() {
	var oldest string
	var at time.Time
	for k, e := range c.entries {
		if oldest == "" || e.StoredAt.Before(at) {
			oldest, at = k, e.StoredAt
		}
	}
	delete(c.entries, oldest)
}

func directives(cc string) []string {
	parts := strings.Split(cc, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

func hasDirective(cc, name string) bool {
	for _, d := range directives(cc) {
		if d == name {
			return true
		}
	}
	return false
}

func maxAge(cc string) (time.Duration, bool) {
	for _, d := range directives(cc) {
		v, ok := strings.CutPrefix(d, "max-age=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.Trim(v, `"`))
		if err != nil || n < 0 {
			return 0, false
		}
		return time.Duration(n) * time.Second, true
	}
	return 0, false
}
