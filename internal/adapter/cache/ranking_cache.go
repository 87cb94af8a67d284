// Package cache memoizes corpus rankings between corpus changes.
package cache

import (
	"sync"
	"time"

	"wordfreq/internal/domain"
)

// RankingCache is an LRU of top-N rankings keyed by N. Entries expire after
// the TTL or as soon as the corpus is invalidated.
type RankingCache struct {
	mu         sync.Mutex
	entries    map[int]rankingEntry
	order      []int
	maxSize    int
	ttl        time.Duration
	generation uint64
	now        func() time.Time
}

type rankingEntry struct {
	words      []domain.WordCount
	stored     time.Time
	generation uint64
}

func NewRankingCache(maxSize int, ttl time.Duration) *RankingCache {
	if maxSize <= 0 {
		maxSize = 16
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RankingCache{
		entries: make(map[int]rankingEntry),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns a copy of the cached ranking for n.
func (c *RankingCache) Get(n int) ([]domain.WordCount, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[n]
	if !ok {
		return nil, false
	}
	if entry.generation != c.generation || c.now().Sub(entry.stored) > c.ttl {
		c.remove(n)
		return nil, false
	}

	c.touch(n)
	return append([]domain.WordCount{}, entry.words...), true
}

// Put stores a copy of the ranking for n, evicting the least recently used
// entry when full.
func (c *RankingCache) Put(n int, words []domain.WordCount) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[n]; ok {
		c.touch(n)
	} else {
		if len(c.entries) >= c.maxSize && len(c.order) > 0 {
			c.remove(c.order[0])
		}
		c.order = append(c.order, n)
	}
	c.entries[n] = rankingEntry{
		words:      append([]domain.WordCount{}, words...),
		stored:     c.now(),
		generation: c.generation,
	}
}

// Invalidate drops every entry. Call it whenever the corpus changes.
func (c *RankingCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.order = c.order[:0]
	c.generation++
}

func (c *RankingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *RankingCache) touch(n int) {
	c.removeFromOrder(n)
	c.order = append(c.order, n)
}

func (c *RankingCache) remove(n int) {
	delete(c.entries, n)
	c.removeFromOrder(n)
}

func (c *RankingCache) removeFromOrder(n int) {
	for i, k := range c.order {
		if k == n {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
