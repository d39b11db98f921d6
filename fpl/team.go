package fpl

import "encoding/json"

// Team is a Premier League club
type Team struct {
	Code                int64           `json:"code"`
	Draw                int64           `json:"draw"`
	Form                json.RawMessage `json:"form"`
	ID                  int64           `json:"id"`
	Loss                int64           `json:"loss"`
	Name                string          `json:"name"`
	Played              int64           `json:"played"`
	Points              int64           `json:"points"`
	Position            int64           `json:"position"`
	ShortName           string          `json:"short_name"`
	Strength            int64           `json:"strength"`
	TeamDivision        json.RawMessage `json:"team_division"`
	Unavailable         bool            `json:"unavailable"`
	Win                 int64           `json:"win"`
	StrengthOverallHome int64           `json:"strength_overall_home"`
	StrengthOverallAway int64           `json:"strength_overall_away"`
	StrengthAttackHome  int64           `json:"strength_attack_home"`
	StrengthAttackAway  int64           `json:"strength_attack_away"`
	StrengthDefenceHome int64           `json:"strength_defence_home"`
	StrengthDefenceAway int64           `json:"strength_defence_away"`
	PulseID             int64           `json:"pulse_id"`
}
