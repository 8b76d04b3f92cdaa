package enrich

import (
	"strconv"

	"fpl-draft-board/internal/draftapi"
)

// CumulativePoints folds any number of live-gameweek payloads into a player
// id → summed points map. The fold is a commutative union-then-sum, so the
// payloads may arrive in any order (they are fetched concurrently).
// Unparseable point values count as zero; players absent from every payload
// are simply absent from the map.
func CumulativePoints(lives []*draftapi.EventLive) map[int]float64 {
	out := make(map[int]float64)
	for _, live := range lives {
		if live == nil {
			continue
		}
		for key, el := range live.Elements {
			id, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			out[id] += toFloat(el.Stats["total_points"])
		}
	}
	return out
}
