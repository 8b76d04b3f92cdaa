package draftapi

// Typed views of the FPL Draft API payloads. Only the fields the board
// pipeline consumes are modeled; the upstream sends far more.
//
// Several numeric fields (form, points_per_game, ep_this, ep_next, the ICT
// indices) arrive as strings and are kept as strings here — coercion to
// float64 happens once, in the enrichment step.

type Bootstrap struct {
	Elements     []Element     `json:"elements"`
	Teams        []Team        `json:"teams"`
	ElementTypes []ElementType `json:"element_types"`
	Events       []Event       `json:"events"`
	Fixtures     []Fixture     `json:"fixtures"`
}

type Element struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	WebName     string `json:"web_name"`
	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`

	// Status is the one-letter availability code; News carries the
	// free-form note ("Knee injury - 75% chance of playing").
	Status string `json:"status"`
	News   string `json:"news"`

	TotalPoints int `json:"total_points"`
	EventPoints int `json:"event_points"`
	GoalsScored int `json:"goals_scored"`
	Assists     int `json:"assists"`
	CleanSheets int `json:"clean_sheets"`
	Bonus       int `json:"bonus"`

	Form          string `json:"form"`
	PointsPerGame string `json:"points_per_game"`
	EPThis        string `json:"ep_this"`
	EPNext        string `json:"ep_next"`
	Influence     string `json:"influence"`
	Creativity    string `json:"creativity"`
	Threat        string `json:"threat"`
}

type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type ElementType struct {
	ID           int    `json:"id"`
	SingularName string `json:"singular_name"`
}

type Event struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
	Finished  bool `json:"finished"`
}

// Fixture score pointers are nil until a match has started.
type Fixture struct {
	ID              int  `json:"id"`
	Event           int  `json:"event"`
	TeamH           int  `json:"team_h"`
	TeamA           int  `json:"team_a"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
	TeamHScore      *int `json:"team_h_score"`
	TeamAScore      *int `json:"team_a_score"`
	Finished        bool `json:"finished"`
	Started         bool `json:"started"`
}

type LeagueDetails struct {
	League        LeagueMeta    `json:"league"`
	LeagueEntries []LeagueEntry `json:"league_entries"`
}

type LeagueMeta struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LeagueEntry struct {
	// ID is the league_entry_id; EntryID is the global entry id. The
	// choices feed references EntryID, the element-status feed ID.
	ID        int    `json:"id"`
	EntryID   int    `json:"entry_id"`
	EntryName string `json:"entry_name"`
	ShortName string `json:"short_name"`
}

type DraftChoices struct {
	Choices []DraftChoice `json:"choices"`
}

type DraftChoice struct {
	Element int `json:"element"`
	Entry   int `json:"entry"`
	Round   int `json:"round"`
	Pick    int `json:"pick"`
}

type ElementStatusResponse struct {
	ElementStatus []ElementStatus `json:"element_status"`
}

type ElementStatus struct {
	Element int `json:"element"`
	// Owner is a league_entry_id; nil means unowned.
	Owner *int `json:"owner"`
}

// EventLive is one gameweek's live stat payload: element id (as a string
// key, per the upstream) to a loosely-typed stat bag. Points inside the bag
// are coerced at aggregation time since the upstream has been observed to
// send both numbers and numeric strings.
type EventLive struct {
	Elements map[string]LiveElement `json:"elements"`
}

type LiveElement struct {
	Stats map[string]any `json:"stats"`
}
