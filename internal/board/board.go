// Package board orchestrates the fetch-enrich-segment pipeline behind a
// per-league TTL cache. Fetch is the single entry point consumed by the
// server tools.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fpl-draft-board/internal/config"
	"fpl-draft-board/internal/difficulty"
	"fpl-draft-board/internal/draftapi"
	"fpl-draft-board/internal/enrich"
	"fpl-draft-board/internal/fetch"
)

// trailingWindow is how many gameweeks (current included) feed the
// cumulative points column.
const trailingWindow = 4

// Result carries the three tables a fetch produces. Owners and Undrafted
// are partitions of Players; they are rebuilt whole on every uncached
// fetch, never patched.
type Result struct {
	LeagueID     int                        `json:"league_id"`
	Gameweek     int                        `json:"gameweek"`
	FetchedAtUTC string                     `json:"fetched_at_utc"`
	Players      []enrich.Player            `json:"players"`
	Owners       map[string][]enrich.Player `json:"owners"`
	Undrafted    []enrich.Player            `json:"undrafted"`
}

type Board struct {
	client          *fetch.Client
	cache           *Cache
	ownershipSource string
}

func New(client *fetch.Client, cache *Cache, ownershipSource string) *Board {
	return &Board{
		client:          client,
		cache:           cache,
		ownershipSource: ownershipSource,
	}
}

// Fetch returns the unified, per-owner and undrafted tables for a league,
// serving from cache unless force is set or the entry has expired. A
// bootstrap or league-details failure aborts the call and leaves any prior
// cache entry untouched; every other upstream gap degrades to a documented
// default.
func (b *Board) Fetch(ctx context.Context, leagueID int, force bool) (*Result, error) {
	if !force {
		if r, ok := b.cache.Get(leagueID); ok {
			slog.Info("cache hit", "league_id", leagueID)
			return r, nil
		}
	}
	slog.Info("cache miss", "league_id", leagueID, "force", force)

	boot, err := b.client.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	details, err := b.client.LeagueDetails(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("league %d: %w", leagueID, err)
	}

	currentGW := boot.CurrentGameweek()
	form := difficulty.FormScores(boot.Fixtures)
	teamDifficulty := difficulty.UpcomingDifficulty(boot.Fixtures, form, currentGW)
	slog.Info("difficulty derived", "teams_with_form", len(form), "teams_with_fixtures", len(teamDifficulty))

	owners := b.resolveOwners(ctx, leagueID, details)
	cumulative := enrich.CumulativePoints(b.collectLive(ctx, currentGW))

	players := enrich.BuildPlayers(boot, owners, cumulative, teamDifficulty)
	ownerTables, undrafted := Segment(players)
	slog.Info("board built",
		"league_id", leagueID,
		"players", len(players),
		"owners", len(ownerTables),
		"undrafted", len(undrafted))

	res := &Result{
		LeagueID:     leagueID,
		Gameweek:     currentGW,
		FetchedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Players:      players,
		Owners:       ownerTables,
		Undrafted:    undrafted,
	}
	b.cache.Put(leagueID, res)
	return res, nil
}

// resolveOwners maps player id → owner name via the configured feed. A
// failed feed is not fatal: every player simply comes back undrafted.
func (b *Board) resolveOwners(ctx context.Context, leagueID int, details *draftapi.LeagueDetails) map[int]string {
	byEntryID, byLeagueEntryID := enrich.EntryNames(details)

	if b.ownershipSource == config.OwnershipElementStatus {
		status, err := b.client.ElementStatus(ctx, leagueID)
		if err != nil {
			slog.Warn("element status unavailable, treating all players as undrafted", "error", err)
			return map[int]string{}
		}
		return enrich.OwnersFromStatus(status, byLeagueEntryID)
	}

	choices, err := b.client.DraftChoices(ctx, leagueID)
	if err != nil {
		slog.Warn("draft choices unavailable, treating all players as undrafted", "error", err)
		return map[int]string{}
	}
	return enrich.OwnersFromChoices(choices, byEntryID)
}

// collectLive fetches the live payloads for the trailing gameweek window
// concurrently. The calls share no state and their results are folded by a
// commutative sum, so collection order does not matter. A failed gameweek
// contributes nothing instead of failing the fetch.
func (b *Board) collectLive(ctx context.Context, currentGW int) []*draftapi.EventLive {
	firstGW := currentGW - (trailingWindow - 1)
	if firstGW < 1 {
		firstGW = 1
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		lives []*draftapi.EventLive
	)
	for gw := firstGW; gw <= currentGW; gw++ {
		wg.Add(1)
		go func(gw int) {
			defer wg.Done()
			live, err := b.client.EventLive(ctx, gw)
			if err != nil {
				slog.Warn("live gameweek unavailable", "gw", gw, "error", err)
				return
			}
			mu.Lock()
			lives = append(lives, live)
			mu.Unlock()
		}(gw)
	}
	wg.Wait()
	return lives
}
