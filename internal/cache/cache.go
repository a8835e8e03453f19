package cache

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"leilaoradar/server/internal/metrics"
	"leilaoradar/server/internal/models"
)

// FetchFunc produces the full normalized listing for one region code.
type FetchFunc func(ctx context.Context, uf string) ([]models.PropertyRecord, error)

type entry struct {
	records   []models.PropertyRecord
	fetchedAt time.Time
}

// RegionCache keeps one listing per region code for a fixed window. Entries
// are replaced wholesale on refresh and never evicted; with at most 27 region
// codes the map stays bounded on its own.
type RegionCache struct {
	logger  *logrus.Logger
	fetch   FetchFunc
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry
}

func New(fetch FetchFunc, ttl time.Duration, logger *logrus.Logger) *RegionCache {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &RegionCache{
		logger:  logger,
		fetch:   fetch,
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get returns the cached listing for uf while it is younger than the window,
// otherwise fetches a fresh one. A failed refresh propagates the error and
// leaves any previous entry untouched, so the next request tries again.
// Concurrent requests for the same expired region may fetch redundantly; the
// duplicate download is harmless and not worth serializing.
func (c *RegionCache) Get(ctx context.Context, uf string) ([]models.PropertyRecord, error) {
	key := strings.ToUpper(strings.TrimSpace(uf))

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && time.Since(e.fetchedAt) < c.ttl {
		metrics.CacheHitsTotal.Inc()
		return e.records, nil
	}
	metrics.CacheMissesTotal.Inc()

	records, err := c.fetch(ctx, key)
	if err != nil {
		c.logger.WithError(err).WithField("uf", key).Error("Listing refresh failed")
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{records: records, fetchedAt: time.Now()}
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"uf":      key,
		"records": len(records),
	}).Info("Cached fresh listing")

	return records, nil
}

// Len reports how many regions currently hold an entry.
func (c *RegionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
