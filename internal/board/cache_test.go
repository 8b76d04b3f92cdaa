package board

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestCache_HitWithinTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewCache(600*time.Second, clock)
	r := &Result{LeagueID: 7}

	c.Put(7, r)
	clock.Advance(599 * time.Second)

	got, ok := c.Get(7)
	if !ok {
		t.Fatal("expected a cache hit at 599s")
	}
	if got != r {
		t.Error("cache must return the stored result")
	}
}

func TestCache_MissAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewCache(600*time.Second, clock)

	c.Put(7, &Result{LeagueID: 7})
	clock.Advance(601 * time.Second)

	if _, ok := c.Get(7); ok {
		t.Error("expected a cache miss at 601s")
	}
}

func TestCache_MissAtExactTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewCache(600*time.Second, clock)

	c.Put(7, &Result{LeagueID: 7})
	clock.Advance(600 * time.Second)

	if _, ok := c.Get(7); ok {
		t.Error("an entry exactly TTL old is expired")
	}
}

func TestCache_UnknownLeagueMisses(t *testing.T) {
	c := NewCache(600*time.Second, clockwork.NewFakeClock())

	if _, ok := c.Get(42); ok {
		t.Error("expected a miss for an unknown league")
	}
}

func TestCache_PutReplacesWholeEntry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := NewCache(600*time.Second, clock)

	c.Put(7, &Result{Gameweek: 1})
	clock.Advance(500 * time.Second)
	c.Put(7, &Result{Gameweek: 2})
	clock.Advance(500 * time.Second)

	// The second Put reset the timestamp, so 500s after it is still fresh.
	got, ok := c.Get(7)
	if !ok {
		t.Fatal("expected a hit: the entry was replaced 500s ago")
	}
	if got.Gameweek != 2 {
		t.Errorf("Gameweek = %d, want 2 (latest entry)", got.Gameweek)
	}
}
