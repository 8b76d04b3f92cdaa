// Package difficulty derives a forward-looking fixture difficulty score per
// club by blending the published per-side ratings with a recent-results form
// score for each upcoming opponent. Published ratings are static for a
// season; opponent form supplies the short-term signal.
package difficulty

import (
	"sort"

	"fpl-draft-board/internal/draftapi"
)

// Neutral is the fallback difficulty/form score used wherever a team has no
// data to derive one from.
const Neutral = 3.0

const (
	publishedWeight = 0.6
	formWeight      = 0.4

	// formWindow is how many recent results feed a team's form score;
	// lookahead how many upcoming fixtures feed its difficulty average.
	formWindow = 5
	lookahead  = 3
)

// Result points per match outcome.
const (
	winPoints  = 3
	drawPoints = 1
	lossPoints = 0
)

// FormScores computes a [1,5] form score per team from finished fixtures:
// outcome points over each team's most recent formWindow results, min–max
// normalized across all teams. Teams with no finished fixtures are absent
// from the map; consumers fall back to Neutral.
func FormScores(fixtures []draftapi.Fixture) map[int]float64 {
	finished := make([]draftapi.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.Finished && f.TeamHScore != nil && f.TeamAScore != nil {
			finished = append(finished, f)
		}
	}
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].Event < finished[j].Event
	})

	results := make(map[int][]int)
	for _, f := range finished {
		h, a := *f.TeamHScore, *f.TeamAScore
		switch {
		case h > a:
			results[f.TeamH] = append(results[f.TeamH], winPoints)
			results[f.TeamA] = append(results[f.TeamA], lossPoints)
		case h < a:
			results[f.TeamH] = append(results[f.TeamH], lossPoints)
			results[f.TeamA] = append(results[f.TeamA], winPoints)
		default:
			results[f.TeamH] = append(results[f.TeamH], drawPoints)
			results[f.TeamA] = append(results[f.TeamA], drawPoints)
		}
	}
	if len(results) == 0 {
		return map[int]float64{}
	}

	sums := make(map[int]int, len(results))
	minSum, maxSum := 0, 0
	first := true
	for teamID, rs := range results {
		if len(rs) > formWindow {
			rs = rs[len(rs)-formWindow:]
		}
		sum := 0
		for _, r := range rs {
			sum += r
		}
		sums[teamID] = sum
		if first || sum < minSum {
			minSum = sum
		}
		if first || sum > maxSum {
			maxSum = sum
		}
		first = false
	}

	out := make(map[int]float64, len(sums))
	for teamID, sum := range sums {
		if maxSum == minSum {
			out[teamID] = Neutral
			continue
		}
		out[teamID] = 1 + 4*float64(sum-minSum)/float64(maxSum-minSum)
	}
	return out
}

// UpcomingDifficulty averages, per team, the blended difficulty of its next
// lookahead unplayed fixtures from currentGW onward. Each fixture scores
// publishedWeight times the published per-side rating plus formWeight times
// the opponent's form score (Neutral when the opponent has no form). Teams
// with no upcoming fixtures are absent; consumers fall back to Neutral.
func UpcomingDifficulty(fixtures []draftapi.Fixture, form map[int]float64, currentGW int) map[int]float64 {
	upcoming := make([]draftapi.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if !f.Finished && f.Event >= currentGW && f.Event > 0 {
			upcoming = append(upcoming, f)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Event < upcoming[j].Event
	})

	type agg struct {
		sum float64
		n   int
	}
	byTeam := make(map[int]*agg)
	add := func(teamID int, published int, opponentID int) {
		a := byTeam[teamID]
		if a == nil {
			a = &agg{}
			byTeam[teamID] = a
		}
		if a.n >= lookahead {
			return
		}
		a.sum += blend(published, form, opponentID)
		a.n++
	}
	for _, f := range upcoming {
		add(f.TeamH, f.TeamHDifficulty, f.TeamA)
		add(f.TeamA, f.TeamADifficulty, f.TeamH)
	}

	out := make(map[int]float64, len(byTeam))
	for teamID, a := range byTeam {
		out[teamID] = a.sum / float64(a.n)
	}
	return out
}

func blend(published int, form map[int]float64, opponentID int) float64 {
	rating := float64(published)
	if published <= 0 {
		rating = Neutral
	}
	opponentForm, ok := form[opponentID]
	if !ok {
		opponentForm = Neutral
	}
	return publishedWeight*rating + formWeight*opponentForm
}
