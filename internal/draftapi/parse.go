package draftapi

import (
	"encoding/json"
	"fmt"
)

// ParseBootstrap decodes and validates the bootstrap-static payload.
// Elements, teams and element_types are the critical reference tables: if
// any of them is absent or not a JSON array the whole payload is rejected,
// so malformed data never flows into the joins downstream.
func ParseBootstrap(body []byte) (*Bootstrap, error) {
	var b Bootstrap
	if err := json.Unmarshal(body, &b); err != nil {
		return nil, fmt.Errorf("parse bootstrap: %w", err)
	}
	for key, present := range map[string]bool{
		"elements":      b.Elements != nil,
		"teams":         b.Teams != nil,
		"element_types": b.ElementTypes != nil,
	} {
		if !present {
			return nil, fmt.Errorf("bootstrap: %q missing or not a list", key)
		}
	}
	return &b, nil
}

// ParseLeagueDetails decodes the league details payload. A payload without
// league_entries is rejected — ownership cannot be resolved without it.
func ParseLeagueDetails(body []byte) (*LeagueDetails, error) {
	var d LeagueDetails
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("parse league details: %w", err)
	}
	if d.LeagueEntries == nil {
		return nil, fmt.Errorf("league details: league_entries missing")
	}
	return &d, nil
}

func ParseDraftChoices(body []byte) (*DraftChoices, error) {
	var c DraftChoices
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, fmt.Errorf("parse draft choices: %w", err)
	}
	return &c, nil
}

func ParseElementStatus(body []byte) (*ElementStatusResponse, error) {
	var s ElementStatusResponse
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("parse element status: %w", err)
	}
	return &s, nil
}

func ParseEventLive(body []byte) (*EventLive, error) {
	var l EventLive
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("parse event live: %w", err)
	}
	return &l, nil
}

// CurrentGameweek returns the event flagged is_current, defaulting to
// gameweek 1 when nothing is flagged (pre-season or first run).
func (b *Bootstrap) CurrentGameweek() int {
	for _, e := range b.Events {
		if e.IsCurrent {
			return e.ID
		}
	}
	return 1
}
