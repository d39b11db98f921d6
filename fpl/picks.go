package fpl

import "encoding/json"

// UserPicks is a manager's squad for one gameweek
type UserPicks struct {
	ActiveChip    *string           `json:"active_chip"`
	AutomaticSubs []json.RawMessage `json:"automatic_subs"`
	EntryHistory  EntryHistory      `json:"entry_history"`
	Picks         []Pick            `json:"picks"`
}

// EntryHistory is a manager's result for one gameweek
type EntryHistory struct {
	Event              int64 `json:"event"`
	Points             int64 `json:"points"`
	TotalPoints        int64 `json:"total_points"`
	Rank               int64 `json:"rank"`
	RankSort           int64 `json:"rank_sort"`
	OverallRank        int64 `json:"overall_rank"`
	Bank               int64 `json:"bank"`
	Value              int64 `json:"value"`
	EventTransfers     int64 `json:"event_transfers"`
	EventTransfersCost int64 `json:"event_transfers_cost"`
	PointsOnBench      int64 `json:"points_on_bench"`
}

// Pick is one player in a manager's squad
type Pick struct {
	Element       int64 `json:"element"`
	Position      int64 `json:"position"`
	Multiplier    int64 `json:"multiplier"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
}
