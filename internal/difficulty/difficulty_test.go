package difficulty

import (
	"math"
	"testing"

	"fpl-draft-board/internal/draftapi"
)

func intp(v int) *int { return &v }

func played(event, teamH, teamA, hScore, aScore int) draftapi.Fixture {
	return draftapi.Fixture{
		Event:      event,
		TeamH:      teamH,
		TeamA:      teamA,
		TeamHScore: intp(hScore),
		TeamAScore: intp(aScore),
		Finished:   true,
		Started:    true,
	}
}

func upcoming(event, teamH, teamA, hDiff, aDiff int) draftapi.Fixture {
	return draftapi.Fixture{
		Event:           event,
		TeamH:           teamH,
		TeamA:           teamA,
		TeamHDifficulty: hDiff,
		TeamADifficulty: aDiff,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFormScores_AllEqualOutcomesNormalizeToMidpoint(t *testing.T) {
	// When every team has identical results, min == max and every score
	// collapses to the neutral midpoint.
	fixtures := []draftapi.Fixture{
		played(1, 1, 2, 1, 1),
		played(1, 3, 4, 0, 0),
	}

	form := FormScores(fixtures)

	for _, teamID := range []int{1, 2, 3, 4} {
		if got := form[teamID]; got != 3.0 {
			t.Errorf("form[%d] = %v, want 3.0", teamID, got)
		}
	}
}

func TestFormScores_SpreadNormalizesToOneAndFive(t *testing.T) {
	// Three straight wins vs three straight losses must map to the scale
	// extremes.
	fixtures := []draftapi.Fixture{
		played(1, 1, 2, 2, 0),
		played(2, 2, 1, 0, 3),
		played(3, 1, 2, 1, 0),
	}

	form := FormScores(fixtures)

	if !almostEqual(form[1], 5.0) {
		t.Errorf("form[1] = %v, want 5.0", form[1])
	}
	if !almostEqual(form[2], 1.0) {
		t.Errorf("form[2] = %v, want 1.0", form[2])
	}
}

func TestFormScores_KeepsOnlyFiveMostRecentResults(t *testing.T) {
	// Team 1 wins in gameweek 1 and then loses five in a row; the early
	// win falls out of the window and team 1 must score the minimum.
	fixtures := []draftapi.Fixture{
		played(1, 1, 2, 1, 0),
	}
	for gw := 2; gw <= 6; gw++ {
		fixtures = append(fixtures, played(gw, 1, 3, 0, 2))
	}

	form := FormScores(fixtures)

	if !almostEqual(form[1], 1.0) {
		t.Errorf("form[1] = %v, want 1.0 (gw1 win outside the window)", form[1])
	}
	if !almostEqual(form[3], 5.0) {
		t.Errorf("form[3] = %v, want 5.0", form[3])
	}
}

func TestFormScores_NoFinishedFixtures(t *testing.T) {
	form := FormScores([]draftapi.Fixture{upcoming(1, 1, 2, 3, 3)})

	if len(form) != 0 {
		t.Errorf("form has %d entries, want 0", len(form))
	}
}

func TestFormScores_SkipsFixturesWithoutScores(t *testing.T) {
	// A fixture flagged finished but missing scores must not contribute.
	f := draftapi.Fixture{Event: 1, TeamH: 1, TeamA: 2, Finished: true}

	form := FormScores([]draftapi.Fixture{f})

	if len(form) != 0 {
		t.Errorf("form has %d entries, want 0", len(form))
	}
}

func TestUpcomingDifficulty_BlendsPublishedAndForm(t *testing.T) {
	fixtures := []draftapi.Fixture{upcoming(10, 1, 2, 2, 4)}
	form := map[int]float64{2: 4.0}

	diff := UpcomingDifficulty(fixtures, form, 10)

	// Home side: 0.6*2 (published) + 0.4*4 (opponent form).
	if !almostEqual(diff[1], 2.8) {
		t.Errorf("diff[1] = %v, want 2.8", diff[1])
	}
	// Away side's opponent has no form entry, so the neutral 3.0 is used.
	if !almostEqual(diff[2], 0.6*4+0.4*3.0) {
		t.Errorf("diff[2] = %v, want %v", diff[2], 0.6*4+0.4*3.0)
	}
}

func TestUpcomingDifficulty_CapsAtThreeFixtures(t *testing.T) {
	fixtures := []draftapi.Fixture{
		upcoming(10, 1, 2, 1, 3),
		upcoming(11, 1, 2, 2, 3),
		upcoming(12, 1, 2, 3, 3),
		upcoming(13, 1, 2, 5, 3), // fourth fixture — must be ignored
	}

	diff := UpcomingDifficulty(fixtures, nil, 10)

	want := 0.6*2.0 + 0.4*3.0 // mean published over the first three is 2
	if !almostEqual(diff[1], want) {
		t.Errorf("diff[1] = %v, want %v", diff[1], want)
	}
}

func TestUpcomingDifficulty_IgnoresPastAndFinishedFixtures(t *testing.T) {
	fixtures := []draftapi.Fixture{
		upcoming(5, 1, 2, 5, 5),    // before the current gameweek
		played(10, 1, 2, 1, 0),     // finished
		upcoming(11, 1, 2, 2, 2),
	}

	diff := UpcomingDifficulty(fixtures, nil, 10)

	want := 0.6*2.0 + 0.4*3.0
	if !almostEqual(diff[1], want) {
		t.Errorf("diff[1] = %v, want %v (only the gw11 fixture counts)", diff[1], want)
	}
}

func TestUpcomingDifficulty_TeamWithoutFixturesIsAbsent(t *testing.T) {
	diff := UpcomingDifficulty([]draftapi.Fixture{upcoming(10, 1, 2, 3, 3)}, nil, 10)

	if _, ok := diff[99]; ok {
		t.Error("team 99 has no fixtures and must be absent from the map")
	}
}

func TestUpcomingDifficulty_MissingPublishedRatingFallsBackToNeutral(t *testing.T) {
	fixtures := []draftapi.Fixture{upcoming(10, 1, 2, 0, 3)}

	diff := UpcomingDifficulty(fixtures, nil, 10)

	want := 0.6*Neutral + 0.4*Neutral
	if !almostEqual(diff[1], want) {
		t.Errorf("diff[1] = %v, want %v", diff[1], want)
	}
}
