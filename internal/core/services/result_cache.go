package services

import (
	"fmt"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultResultCacheSize bounds the number of currency pairs kept in memory.
const DefaultResultCacheSize = 4096

type pairKey struct {
	from domain.CurrencyCode
	to   domain.CurrencyCode
}

// ResultCache memoizes resolved rates per ordered currency pair.
// It is safe for concurrent use.
type ResultCache struct {
	entries *lru.Cache[pairKey, domain.CachedResult]
}

// NewResultCache creates a cache holding at most size pairs.
func NewResultCache(size int) (*ResultCache, error) {
	entries, err := lru.New[pairKey, domain.CachedResult](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	return &ResultCache{entries: entries}, nil
}

// Get returns the cached result for from->to. The returned path is a copy.
func (c *ResultCache) Get(from, to domain.CurrencyCode) (domain.CachedResult, bool) {
	res, ok := c.entries.Get(pairKey{from: from, to: to})
	if !ok {
		return domain.CachedResult{}, false
	}
	res.Path = append(domain.Path(nil), res.Path...)
	return res, true
}

// Put stores the result for from->to.
func (c *ResultCache) Put(from, to domain.CurrencyCode, res domain.CachedResult) {
	res.Path = append(domain.Path(nil), res.Path...)
	c.entries.Add(pairKey{from: from, to: to}, res)
}

// Invalidate drops every entry.
func (c *ResultCache) Invalidate() {
	c.entries.Purge()
}

// Len returns the number of cached pairs.
func (c *ResultCache) Len() int {
	return c.entries.Len()
}
