package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"fpl-draft-board/internal/board"
	"fpl-draft-board/internal/enrich"
)

// matchThreshold is the minimum name similarity (0..1) for a fuzzy match.
const matchThreshold = 0.5

func similarity(query, candidate string) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	candidate = strings.ToLower(candidate)
	if query == "" || candidate == "" {
		return 0
	}
	if strings.Contains(candidate, query) {
		return 1
	}
	distance := fuzzy.LevenshteinDistance(query, candidate)
	maxLen := len(query)
	if len(candidate) > maxLen {
		maxLen = len(candidate)
	}
	return 1 - float64(distance)/float64(maxLen)
}

// matchOwner resolves a (possibly misspelled) owner team name against the
// board's partitions.
func matchOwner(res *board.Result, team string) (string, []enrich.Player, error) {
	bestName := ""
	bestScore := -1.0
	for name := range res.Owners {
		if s := similarity(team, name); s > matchThreshold && s > bestScore {
			bestScore = s
			bestName = name
		}
	}
	if bestName == "" {
		return "", nil, fmt.Errorf("team not found: %s", team)
	}
	return bestName, res.Owners[bestName], nil
}

type searchHit struct {
	enrich.Player
	Score float64 `json:"match_score"`
}

// searchPlayers ranks unified-table rows by name similarity to the query.
func searchPlayers(res *board.Result, query string, limit int) []searchHit {
	hits := make([]searchHit, 0, limit)
	for _, p := range res.Players {
		full := strings.TrimSpace(p.FirstName + " " + p.SecondName)
		s := similarity(query, p.WebName)
		if fs := similarity(query, full); fs > s {
			s = fs
		}
		if s > matchThreshold {
			hits = append(hits, searchHit{Player: p, Score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].TotalPoints > hits[j].TotalPoints
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

type difficultyRow struct {
	TeamID     int     `json:"team_id"`
	TeamName   string  `json:"team_name"`
	Difficulty float64 `json:"avg_difficulty"`
}

// difficultyRows collapses the per-player difficulty column into one row
// per club, easiest schedule first.
func difficultyRows(res *board.Result) []difficultyRow {
	seen := make(map[int]bool)
	rows := make([]difficultyRow, 0, 20)
	for _, p := range res.Players {
		if p.TeamID == 0 || seen[p.TeamID] {
			continue
		}
		seen[p.TeamID] = true
		rows = append(rows, difficultyRow{
			TeamID:     p.TeamID,
			TeamName:   p.TeamName,
			Difficulty: p.FixtureDifficulty,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Difficulty != rows[j].Difficulty {
			return rows[i].Difficulty < rows[j].Difficulty
		}
		return rows[i].TeamID < rows[j].TeamID
	})
	return rows
}
