package fpl

import (
	"encoding/json"
	"fmt"
)

// Player availability statuses as reported by the API
const (
	PlayerStatusAvailable   = "a"
	PlayerStatusDoubtful    = "d"
	PlayerStatusInjured     = "i"
	PlayerStatusSuspended   = "s"
	PlayerStatusUnavailable = "u"
	PlayerStatusNotInSquad  = "n"
)

// Player is a footballer in the game, with pricing, availability and the
// full season statistics. Several numeric stats arrive as strings from the
// API and are kept as strings here.
type Player struct {
	ChanceOfPlayingNextRound         *int64          `json:"chance_of_playing_next_round"`
	ChanceOfPlayingThisRound         *int64          `json:"chance_of_playing_this_round"`
	Code                             int64           `json:"code"`
	CostChangeEvent                  int64           `json:"cost_change_event"`
	CostChangeEventFall              int64           `json:"cost_change_event_fall"`
	CostChangeStart                  int64           `json:"cost_change_start"`
	CostChangeStartFall              int64           `json:"cost_change_start_fall"`
	DreamteamCount                   int64           `json:"dreamteam_count"`
	ElementType                      int64           `json:"element_type"`
	EPNext                           string          `json:"ep_next"`
	EPThis                           string          `json:"ep_this"`
	EventPoints                      int64           `json:"event_points"`
	FirstName                        string          `json:"first_name"`
	Form                             string          `json:"form"`
	ID                               int64           `json:"id"`
	InDreamteam                      bool            `json:"in_dreamteam"`
	News                             string          `json:"news"`
	NewsAdded                        *string         `json:"news_added"`
	NowCost                          int64           `json:"now_cost"`
	Photo                            string          `json:"photo"`
	PointsPerGame                    string          `json:"points_per_game"`
	SecondName                       string          `json:"second_name"`
	SelectedByPercent                string          `json:"selected_by_percent"`
	Special                          bool            `json:"special"`
	SquadNumber                      json.RawMessage `json:"squad_number"`
	Status                           string          `json:"status"`
	Team                             int64           `json:"team"`
	TeamCode                         int64           `json:"team_code"`
	TotalPoints                      int64           `json:"total_points"`
	TransfersIn                      int64           `json:"transfers_in"`
	TransfersInEvent                 int64           `json:"transfers_in_event"`
	TransfersOut                     int64           `json:"transfers_out"`
	TransfersOutEvent                int64           `json:"transfers_out_event"`
	ValueForm                        string          `json:"value_form"`
	ValueSeason                      string          `json:"value_season"`
	WebName                          string          `json:"web_name"`
	Minutes                          int64           `json:"minutes"`
	GoalsScored                      int64           `json:"goals_scored"`
	Assists                          int64           `json:"assists"`
	CleanSheets                      int64           `json:"clean_sheets"`
	GoalsConceded                    int64           `json:"goals_conceded"`
	OwnGoals                         int64           `json:"own_goals"`
	PenaltiesSaved                   int64           `json:"penalties_saved"`
	PenaltiesMissed                  int64           `json:"penalties_missed"`
	YellowCards                      int64           `json:"yellow_cards"`
	RedCards                         int64           `json:"red_cards"`
	Saves                            int64           `json:"saves"`
	Bonus                            int64           `json:"bonus"`
	BPS                              int64           `json:"bps"`
	Influence                        string          `json:"influence"`
	Creativity                       string          `json:"creativity"`
	Threat                           string          `json:"threat"`
	ICTIndex                         string          `json:"ict_index"`
	Starts                           int64           `json:"starts"`
	ExpectedGoals                    string          `json:"expected_goals"`
	ExpectedAssists                  string          `json:"expected_assists"`
	ExpectedGoalInvolvements         string          `json:"expected_goal_involvements"`
	ExpectedGoalsConceded            string          `json:"expected_goals_conceded"`
	InfluenceRank                    int64           `json:"influence_rank"`
	InfluenceRankType                int64           `json:"influence_rank_type"`
	CreativityRank                   int64           `json:"creativity_rank"`
	CreativityRankType               int64           `json:"creativity_rank_type"`
	ThreatRank                       int64           `json:"threat_rank"`
	ThreatRankType                   int64           `json:"threat_rank_type"`
	ICTIndexRank                     int64           `json:"ict_index_rank"`
	ICTIndexRankType                 int64           `json:"ict_index_rank_type"`
	CornersAndIndirectFreekicksOrder *int64          `json:"corners_and_indirect_freekicks_order"`
	CornersAndIndirectFreekicksText  string          `json:"corners_and_indirect_freekicks_text"`
	DirectFreekicksOrder             *int64          `json:"direct_freekicks_order"`
	DirectFreekicksText              string          `json:"direct_freekicks_text"`
	PenaltiesOrder                   *int64          `json:"penalties_order"`
	PenaltiesText                    string          `json:"penalties_text"`
	ExpectedGoalsPer90               float64         `json:"expected_goals_per_90"`
	SavesPer90                       float64         `json:"saves_per_90"`
	ExpectedAssistsPer90             float64         `json:"expected_assists_per_90"`
	ExpectedGoalInvolvementsPer90    float64         `json:"expected_goal_involvements_per_90"`
	ExpectedGoalsConcededPer90       float64         `json:"expected_goals_conceded_per_90"`
	GoalsConcededPer90               float64         `json:"goals_conceded_per_90"`
	NowCostRank                      int64           `json:"now_cost_rank"`
	NowCostRankType                  int64           `json:"now_cost_rank_type"`
	FormRank                         int64           `json:"form_rank"`
	FormRankType                     int64           `json:"form_rank_type"`
	PointsPerGameRank                int64           `json:"points_per_game_rank"`
	PointsPerGameRankType            int64           `json:"points_per_game_rank_type"`
	SelectedRank                     int64           `json:"selected_rank"`
	SelectedRankType                 int64           `json:"selected_rank_type"`
	StartsPer90                      float64         `json:"starts_per_90"`
	CleanSheetsPer90                 float64         `json:"clean_sheets_per_90"`
}

// FullName returns the player's first and second name
func (p Player) FullName() string {
	return p.FirstName + " " + p.SecondName
}

// String implements fmt.Stringer
func (p Player) String() string {
	return fmt.Sprintf("<id: %d, name: %s>", p.ID, p.FullName())
}

// Price returns the player's current price in millions
func (p Player) Price() float64 {
	return float64(p.NowCost) / 10
}

// Position returns the player's position short name
func (p Player) Position() string {
	switch p.ElementType {
	case 1:
		return "GKP"
	case 2:
		return "DEF"
	case 3:
		return "MID"
	case 4:
		return "FWD"
	default:
		return "UNK"
	}
}

// Available reports whether the player is fully available for selection
func (p Player) Available() bool {
	return p.Status == PlayerStatusAvailable
}

// PlayerStat names one of the statistics tracked per player
type PlayerStat struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// PlayerType describes a position and its squad selection rules
type PlayerType struct {
	ID                 int64   `json:"id"`
	PluralName         string  `json:"plural_name"`
	PluralNameShort    string  `json:"plural_name_short"`
	SingularName       string  `json:"singular_name"`
	SingularNameShort  string  `json:"singular_name_short"`
	SquadSelect        int64   `json:"squad_select"`
	SquadMinPlay       int64   `json:"squad_min_play"`
	SquadMaxPlay       int64   `json:"squad_max_play"`
	UIShirtSpecific    bool    `json:"ui_shirt_specific"`
	SubPositionsLocked []int64 `json:"sub_positions_locked"`
	ElementCount       int64   `json:"element_count"`
}
