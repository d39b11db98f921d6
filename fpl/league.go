package fpl

import "encoding/json"

// ClassicLeague is a classic league with its current standings page
type ClassicLeague struct {
	NewEntries      NewEntries `json:"new_entries"`
	LastUpdatedData string     `json:"last_updated_data"`
	League          LeagueInfo `json:"league"`
	Standings       Standings  `json:"standings"`
}

// NewEntries pages through managers who joined but are not ranked yet
type NewEntries struct {
	HasNext bool              `json:"has_next"`
	Page    int64             `json:"page"`
	Results []json.RawMessage `json:"results"`
}

// LeagueInfo describes a league itself
type LeagueInfo struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Created     string          `json:"created"`
	Closed      bool            `json:"closed"`
	MaxEntries  json.RawMessage `json:"max_entries"`
	LeagueType  string          `json:"league_type"`
	Scoring     string          `json:"scoring"`
	AdminEntry  int64           `json:"admin_entry"`
	StartEvent  int64           `json:"start_event"`
	CodePrivacy string          `json:"code_privacy"`
	HasCup      bool            `json:"has_cup"`
	CupLeague   json.RawMessage `json:"cup_league"`
	Rank        json.RawMessage `json:"rank"`
}

// Standings is one page of league standings
type Standings struct {
	HasNext bool             `json:"has_next"`
	Page    int64            `json:"page"`
	Results []LeagueStanding `json:"results"`
}

// LeagueStanding is one manager's row in a league table
type LeagueStanding struct {
	ID         int64  `json:"id"`
	EventTotal int64  `json:"event_total"`
	PlayerName string `json:"player_name"`
	Rank       int64  `json:"rank"`
	LastRank   int64  `json:"last_rank"`
	RankSort   int64  `json:"rank_sort"`
	Total      int64  `json:"total"`
	Entry      int64  `json:"entry"`
	EntryName  string `json:"entry_name"`
}

// H2HLeague is one page of a head-to-head league's matches
type H2HLeague struct {
	HasNext bool       `json:"has_next"`
	Page    int64      `json:"page"`
	Results []H2HMatch `json:"results"`
}

// H2HMatch is a single head-to-head pairing
type H2HMatch struct {
	ID               int64           `json:"id"`
	Entry1Entry      int64           `json:"entry_1_entry"`
	Entry1Name       string          `json:"entry_1_name"`
	Entry1PlayerName string          `json:"entry_1_player_name"`
	Entry1Points     int64           `json:"entry_1_points"`
	Entry1Win        int64           `json:"entry_1_win"`
	Entry1Draw       int64           `json:"entry_1_draw"`
	Entry1Loss       int64           `json:"entry_1_loss"`
	Entry1Total      int64           `json:"entry_1_total"`
	Entry2Entry      int64           `json:"entry_2_entry"`
	Entry2Name       string          `json:"entry_2_name"`
	Entry2PlayerName string          `json:"entry_2_player_name"`
	Entry2Points     int64           `json:"entry_2_points"`
	Entry2Win        int64           `json:"entry_2_win"`
	Entry2Draw       int64           `json:"entry_2_draw"`
	Entry2Loss       int64           `json:"entry_2_loss"`
	Entry2Total      int64           `json:"entry_2_total"`
	IsKnockout       bool            `json:"is_knockout"`
	League           int64           `json:"league"`
	Winner           json.RawMessage `json:"winner"`
	SeedValue        json.RawMessage `json:"seed_value"`
	Event            int64           `json:"event"`
	Tiebreak         json.RawMessage `json:"tiebreak"`
	IsBye            bool            `json:"is_bye"`
	KnockoutName     string          `json:"knockout_name"`
}
