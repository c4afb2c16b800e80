package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/logging"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/store"
)

// DefaultCacheTTL is how long an extracted job description is reused.
const DefaultCacheTTL = 24 * time.Hour

// cacheKeyPrefix namespaces cached pages inside the record store
const cacheKeyPrefix = "jd_page:"

// cachedPage is the stored form of an extracted job description
type cachedPage struct {
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Cached extracts job descriptions and keeps the text in a record store.
type Cached struct {
	store   store.Store
	options *Options
	ttl     time.Duration
	log     *logging.Logger
	now     func() time.Time
	fetch   func(ctx context.Context, rawURL string, opts *Options) (string, error)
}

// NewCached creates a cache over st. A zero ttl uses DefaultCacheTTL.
func NewCached(st store.Store, opts *Options, ttl time.Duration, log *logging.Logger) *Cached {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Cached{
		store:   st,
		options: opts,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		fetch:   JobDescription,
	}
}

// JobDescription returns the cached text for rawURL when it is fresh, and fetches it otherwise.
// Cache failures are logged and never fail the fetch.
func (c *Cached) JobDescription(ctx context.Context, rawURL string) (string, error) {
	key := cacheKeyPrefix + rawURL

	if data, err := c.store.Get(ctx, key); err == nil {
		var page cachedPage
		if err := json.Unmarshal(data, &page); err == nil && c.now().Sub(page.FetchedAt) < c.ttl {
			c.log.Debug("job description cache hit", "url", rawURL)
			return page.Text, nil
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		c.log.Warn("job description cache read failed", "url", rawURL, "error", err)
	}

	text, err := c.fetch(ctx, rawURL, c.options)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(cachedPage{URL: rawURL, Text: text, FetchedAt: c.now().UTC()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal cached page: %w", err)
	}
	if err := c.store.Set(ctx, key, data); err != nil {
		c.log.Warn("job description cache write failed", "url", rawURL, "error", err)
	}
	return text, nil
}
