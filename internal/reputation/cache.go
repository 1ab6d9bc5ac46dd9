// Package reputation caches hash-reputation lookups. A verdict for a given
// digest is stable over the short term, so repeated lookups are served from
// an LRU and concurrent lookups for the same digest are collapsed into one
// upstream call.
package reputation

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// Fetcher is the slice of the SentinelOne client the cache fills from.
type Fetcher interface {
	HashReputation(ctx context.Context, hash string) (*client.HashReputation, error)
}

// Cache is an LRU of hash-reputation verdicts keyed by lowercase digest.
type Cache struct {
	fetcher Fetcher
	entries *lru.Cache[string, *client.HashReputation]
	group   singleflight.Group
}

// New creates a cache holding at most maxItems verdicts.
func New(fetcher Fetcher, maxItems int) (*Cache, error) {
	entries, err := lru.New[string, *client.HashReputation](maxItems)
	if err != nil {
		return nil, err
	}
	return &Cache{fetcher: fetcher, entries: entries}, nil
}

// Lookup returns the reputation for hash, fetching it upstream on a miss.
// Errors are not cached; a failed lookup retries on the next call.
func (c *Cache) Lookup(ctx context.Context, hash string) (*client.HashReputation, error) {
	key := strings.ToLower(hash)

	if rep, ok := c.entries.Get(key); ok {
		return rep, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		rep, err := c.fetcher.HashReputation(ctx, key)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, rep)
		return rep, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*client.HashReputation), nil
}

// Len reports the number of cached verdicts.
func (c *Cache) Len() int {
	return c.entries.Len()
}
