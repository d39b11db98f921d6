package fpl

// Fixture is a single match between two teams
type Fixture struct {
	Code                 int64         `json:"code"`
	Event                *int64        `json:"event"`
	Finished             bool          `json:"finished"`
	FinishedProvisional  bool          `json:"finished_provisional"`
	ID                   int64         `json:"id"`
	KickoffTime          *string       `json:"kickoff_time"`
	Minutes              int64         `json:"minutes"`
	ProvisionalStartTime bool          `json:"provisional_start_time"`
	Started              *bool         `json:"started"`
	TeamA                int64         `json:"team_a"`
	TeamAScore           *int64        `json:"team_a_score"`
	TeamH                int64         `json:"team_h"`
	TeamHScore           *int64        `json:"team_h_score"`
	Stats                []FixtureStat `json:"stats"`
	TeamHDifficulty      int64         `json:"team_h_difficulty"`
	TeamADifficulty      int64         `json:"team_a_difficulty"`
	PulseID              int64         `json:"pulse_id"`
}

// FixtureStat is one statistic of a fixture, split per side
type FixtureStat struct {
	Identifier string      `json:"identifier"`
	Away       []StatValue `json:"a"`
	Home       []StatValue `json:"h"`
}

// StatValue attributes a stat value to a player
type StatValue struct {
	Value   int64 `json:"value"`
	Element int64 `json:"element"`
}
