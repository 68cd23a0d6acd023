// Package network fetches page templates and scripts over HTTP.
package network

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 8 << 20

// Client is an HTTP client with a cookie jar and a revalidating cache.
type Client struct {
	http      *http.Client
	cache     *Cache
	userAgent string
	timeout   time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithCache replaces the response cache; nil disables caching.
func WithCache(cache *Cache) ClientOption {
	return func(c *Client) { c.cache = cache }
}

// NewClient returns a client with the given options applied.
func NewClient(opts ...ClientOption) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "cookie jar")
	}
	c := &Client{
		cache:     NewCache(64),
		userAgent: "avita/1.0",
		timeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = &http.Client{Jar: jar, Timeout: c.timeout}
	return c, nil
}

// Response is a fetched resource.
type Response struct {
	URL         *url.URL
	StatusCode  int
	ContentType string
	Body        []byte
	FromCache   bool
}

// Get fetches rawURL. Cached entries are served while fresh and
// revalidated with ETag or Last-Modified once stale.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("unsupported scheme %q", u.Scheme)
	}
	key := u.String()

	var entry *CacheEntry
	if c.cache != nil {
		if e, ok := c.cache.Get(key); ok {
			if !e.Expired() {
				resp := *e.Response
				resp.FromCache = true
				return &resp, nil
			}
			entry = e
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	if entry != nil {
		if entry.ETag != "" {
			req.Header.Set("If-None-Match", entry.ETag)
		}
		if entry.LastModified != "" {
			req.Header.Set("If-Modified-Since", entry.LastModified)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", key)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotModified && entry != nil {
		h := res.Header.Clone()
		if h.Get("ETag") == "" && entry.ETag != "" {
			h.Set("ETag", entry.ETag)
		}
		if h.Get("Last-Modified") == "" && entry.LastModified != "" {
			h.Set("Last-Modified", entry.LastModified)
		}
		c.cache.Set(key, entry.Response, h)
		logrus.WithField("url", key).Debug("revalidated")
		resp := *entry.Response
		resp.FromCache = true
		return &resp, nil
	}
	if res.StatusCode >= 400 {
		return nil, errors.Errorf("fetch %s: %s", key, res.Status)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, MaxBodySize))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}
	resp := &Response{
		URL:         res.Request.URL,
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}
	if c.cache != nil {
		c.cache.Set(key, resp, res.Header)
	}
	logrus.WithFields(logrus.Fields{"url": key, "status": res.StatusCode, "bytes": len(body)}).Debug("fetched")
	return resp, nil
}

// IsURL reports whether ref names an http or https resource rather than a
// local path.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// MediaType returns the lower-cased media type of a Content-Type value.
func MediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// IsHTML reports whether the content type is an HTML document.
func IsHTML(contentType string) bool {
	mt := MediaType(contentType)
	return mt == "text/html" || mt == "application/xhtml+xml"
}
