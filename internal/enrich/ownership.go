package enrich

import "fpl-draft-board/internal/draftapi"

// EntryNames builds the two id→name maps for a league's entries: one keyed
// by the global entry id (referenced by the choices feed) and one by the
// league_entry id (referenced by the element-status feed). Entries missing
// an id or a name are skipped, not fatal.
func EntryNames(details *draftapi.LeagueDetails) (byEntryID map[int]string, byLeagueEntryID map[int]string) {
	byEntryID = make(map[int]string, len(details.LeagueEntries))
	byLeagueEntryID = make(map[int]string, len(details.LeagueEntries))
	for _, e := range details.LeagueEntries {
		if e.EntryName == "" {
			continue
		}
		if e.EntryID != 0 {
			byEntryID[e.EntryID] = e.EntryName
		}
		if e.ID != 0 {
			byLeagueEntryID[e.ID] = e.EntryName
		}
	}
	return byEntryID, byLeagueEntryID
}

// OwnersFromChoices maps player id → owner name via the draft picks feed.
// Picks referencing unknown entries are skipped.
func OwnersFromChoices(choices *draftapi.DraftChoices, byEntryID map[int]string) map[int]string {
	out := make(map[int]string)
	if choices == nil {
		return out
	}
	for _, c := range choices.Choices {
		if c.Element == 0 || c.Entry == 0 {
			continue
		}
		if name, ok := byEntryID[c.Entry]; ok {
			out[c.Element] = name
		}
	}
	return out
}

// OwnersFromStatus maps player id → owner name via the element-status feed.
// A nil owner means the element is unowned.
func OwnersFromStatus(status *draftapi.ElementStatusResponse, byLeagueEntryID map[int]string) map[int]string {
	out := make(map[int]string)
	if status == nil {
		return out
	}
	for _, s := range status.ElementStatus {
		if s.Element == 0 || s.Owner == nil {
			continue
		}
		if name, ok := byLeagueEntryID[*s.Owner]; ok {
			out[s.Element] = name
		}
	}
	return out
}
