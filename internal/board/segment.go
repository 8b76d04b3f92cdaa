package board

import (
	"sort"

	"fpl-draft-board/internal/enrich"
)

// Segment partitions the unified table by owner. Every player lands in
// exactly one partition: their owner's table, or the undrafted table when
// Owner is nil. Each partition is an independent copy sorted by
// trailing-window points descending.
func Segment(players []enrich.Player) (map[string][]enrich.Player, []enrich.Player) {
	owners := make(map[string][]enrich.Player)
	undrafted := make([]enrich.Player, 0)
	for _, p := range players {
		if p.Owner == nil {
			undrafted = append(undrafted, p)
			continue
		}
		owners[*p.Owner] = append(owners[*p.Owner], p)
	}

	for name := range owners {
		sortByPoints(owners[name])
	}
	sortByPoints(undrafted)
	return owners, undrafted
}

func sortByPoints(players []enrich.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].CumulativePoints != players[j].CumulativePoints {
			return players[i].CumulativePoints > players[j].CumulativePoints
		}
		if players[i].TotalPoints != players[j].TotalPoints {
			return players[i].TotalPoints > players[j].TotalPoints
		}
		return players[i].ID < players[j].ID
	})
}
