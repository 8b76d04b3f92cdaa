// Package enrich builds the unified player table: bootstrap elements joined
// with team, position, ownership and live-gameweek data, plus the derived
// expectation and difficulty metrics.
package enrich

import (
	"fpl-draft-board/internal/difficulty"
	"fpl-draft-board/internal/draftapi"
)

// Player is one row of the unified table. Owner is nil for undrafted
// players; every other field has a concrete zero-safe value even when the
// upstream joins found no match.
type Player struct {
	ID         int    `json:"id"`
	WebName    string `json:"web_name"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`

	Position string `json:"position"`
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`

	Status string `json:"status"`
	News   string `json:"news"`

	TotalPoints      int     `json:"total_points"`
	EventPoints      int     `json:"event_points"`
	CumulativePoints int     `json:"cumulative_total_points"`
	Form             float64 `json:"form"`
	PointsPerGame    float64 `json:"points_per_game"`
	GoalsScored      int     `json:"goals_scored"`
	Assists          int     `json:"assists"`
	CleanSheets      int     `json:"clean_sheets"`
	Bonus            int     `json:"bonus"`
	Influence        float64 `json:"influence"`
	Creativity       float64 `json:"creativity"`
	Threat           float64 `json:"threat"`

	ExpectedThis float64 `json:"ep_this"`
	ExpectedNext float64 `json:"ep_next"`

	ExpectationDelta  float64 `json:"expectation_delta"`
	PerformanceRank   int     `json:"performance_rank"`
	FixtureDifficulty float64 `json:"avg_fixture_difficulty"`

	Owner *string `json:"owner"`
}

// BuildPlayers produces one Player per bootstrap element. All joins are
// left joins: an element whose team, position, owner or live stats are
// missing keeps its row with the documented defaults.
func BuildPlayers(
	boot *draftapi.Bootstrap,
	owners map[int]string,
	cumulative map[int]float64,
	teamDifficulty map[int]float64,
) []Player {
	teamNames := make(map[int]string, len(boot.Teams))
	for _, t := range boot.Teams {
		teamNames[t.ID] = t.Name
	}
	positions := make(map[int]string, len(boot.ElementTypes))
	for _, p := range boot.ElementTypes {
		positions[p.ID] = p.SingularName
	}

	players := make([]Player, 0, len(boot.Elements))
	for _, e := range boot.Elements {
		diff, ok := teamDifficulty[e.Team]
		if !ok {
			diff = difficulty.Neutral
		}

		p := Player{
			ID:         e.ID,
			WebName:    e.WebName,
			FirstName:  e.FirstName,
			SecondName: e.SecondName,

			Position: positions[e.ElementType],
			TeamID:   e.Team,
			TeamName: teamNames[e.Team],

			Status: e.Status,
			News:   e.News,

			TotalPoints:      e.TotalPoints,
			EventPoints:      e.EventPoints,
			CumulativePoints: int(cumulative[e.ID]),
			Form:             toFloat(e.Form),
			PointsPerGame:    toFloat(e.PointsPerGame),
			GoalsScored:      e.GoalsScored,
			Assists:          e.Assists,
			CleanSheets:      e.CleanSheets,
			Bonus:            e.Bonus,
			Influence:        toFloat(e.Influence),
			Creativity:       toFloat(e.Creativity),
			Threat:           toFloat(e.Threat),

			ExpectedThis: toFloat(e.EPThis),
			ExpectedNext: toFloat(e.EPNext),

			FixtureDifficulty: diff,
		}
		p.ExpectationDelta = float64(p.EventPoints) - p.ExpectedThis
		p.PerformanceRank = PerformanceRank(p.ExpectationDelta)

		if name, ok := owners[e.ID]; ok {
			owner := name
			p.Owner = &owner
		}
		players = append(players, p)
	}
	return players
}

// PerformanceRank discretizes an expectation delta into a 1–10 rank. The
// gaps in the scale (no 9, no 2–4) are deliberate: the rank is a coarse
// over/underperformance bucket, not a linear score.
func PerformanceRank(delta float64) int {
	switch {
	case delta >= 8:
		return 10
	case delta >= 4:
		return 8
	case delta >= 2:
		return 7
	case delta >= 0:
		return 6
	case delta > -2:
		return 5
	default:
		return 1
	}
}
