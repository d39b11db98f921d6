package fpl

import "time"

// Gameweek is one round of the season, called an event by the API
type Gameweek struct {
	ID                     int64          `json:"id"`
	Name                   string         `json:"name"`
	DeadlineTime           string         `json:"deadline_time"`
	AverageEntryScore      int64          `json:"average_entry_score"`
	Finished               bool           `json:"finished"`
	DataChecked            bool           `json:"data_checked"`
	HighestScoringEntry    *int64         `json:"highest_scoring_entry"`
	DeadlineTimeEpoch      int64          `json:"deadline_time_epoch"`
	DeadlineTimeGameOffset int64          `json:"deadline_time_game_offset"`
	HighestScore           *int64         `json:"highest_score"`
	IsPrevious             bool           `json:"is_previous"`
	IsCurrent              bool           `json:"is_current"`
	IsNext                 bool           `json:"is_next"`
	CupLeaguesCreated      bool           `json:"cup_leagues_created"`
	H2HKOMatchesCreated    bool           `json:"h2h_ko_matches_created"`
	ChipPlays              []ChipPlay     `json:"chip_plays"`
	MostSelected           *int64         `json:"most_selected"`
	MostTransferredIn      *int64         `json:"most_transferred_in"`
	TopElement             *int64         `json:"top_element"`
	TopElementInfo         *TopPlayerInfo `json:"top_element_info"`
	TransfersMade          int64          `json:"transfers_made"`
	MostCaptained          *int64         `json:"most_captained"`
	MostViceCaptained      *int64         `json:"most_vice_captained"`
}

// Deadline parses the gameweek's deadline into a time.Time
func (g Gameweek) Deadline() (time.Time, error) {
	return time.Parse(time.RFC3339, g.DeadlineTime)
}

// ChipPlay counts how often a chip was played in a gameweek
type ChipPlay struct {
	ChipName  string `json:"chip_name"`
	NumPlayed int64  `json:"num_played"`
}

// TopPlayerInfo is the highest scoring player of a gameweek
type TopPlayerInfo struct {
	ID     int64 `json:"id"`
	Points int64 `json:"points"`
}
