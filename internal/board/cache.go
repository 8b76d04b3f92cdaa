package board

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cache memoizes one Result per league for a bounded window. Entries are
// replaced whole, never mutated in place, so a concurrent reader always
// sees either a complete prior result or a complete new one.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   clockwork.Clock
	entries map[int]cacheEntry
}

type cacheEntry struct {
	fetchedAt time.Time
	result    *Result
}

func NewCache(ttl time.Duration, clock clockwork.Clock) *Cache {
	return &Cache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[int]cacheEntry),
	}
}

// Get returns the cached result for a league if one exists and is younger
// than the TTL.
func (c *Cache) Get(leagueID int) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[leagueID]
	if !ok {
		return nil, false
	}
	if c.clock.Since(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.result, true
}

func (c *Cache) Put(leagueID int, r *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[leagueID] = cacheEntry{fetchedAt: c.clock.Now(), result: r}
}
