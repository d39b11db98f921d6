package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// BootstrapStatic is the game-wide summary returned by the bootstrap-static
// endpoint. It carries every gameweek, team and player of the season plus
// the game settings.
type BootstrapStatic struct {
	Events       []Gameweek   `json:"events"`
	GameSettings GameSettings `json:"game_settings"`
	Phases       []Phase      `json:"phases"`
	Teams        []Team       `json:"teams"`
	TotalPlayers int64        `json:"total_players"`
	Elements     []Player     `json:"elements"`
	ElementStats []PlayerStat `json:"element_stats"`
	ElementTypes []PlayerType `json:"element_types"`
}

// GameSettings holds the league and squad rules of the current season
type GameSettings struct {
	LeagueJoinPrivateMax         int64             `json:"league_join_private_max"`
	LeagueJoinPublicMax          int64             `json:"league_join_public_max"`
	LeagueMaxSizePublicClassic   int64             `json:"league_max_size_public_classic"`
	LeagueMaxSizePublicH2H       int64             `json:"league_max_size_public_h2h"`
	LeagueMaxSizePrivateH2H      int64             `json:"league_max_size_private_h2h"`
	LeagueMaxKORoundsPrivateH2H  int64             `json:"league_max_ko_rounds_private_h2h"`
	LeaguePrefixPublic           string            `json:"league_prefix_public"`
	LeaguePointsH2HWin           int64             `json:"league_points_h2h_win"`
	LeaguePointsH2HLose          int64             `json:"league_points_h2h_lose"`
	LeaguePointsH2HDraw          int64             `json:"league_points_h2h_draw"`
	LeagueKOFirstInsteadOfRandom bool              `json:"league_ko_first_instead_of_random"`
	CupStartEventID              json.RawMessage   `json:"cup_start_event_id"`
	CupStopEventID               json.RawMessage   `json:"cup_stop_event_id"`
	CupQualifyingMethod          json.RawMessage   `json:"cup_qualifying_method"`
	CupType                      json.RawMessage   `json:"cup_type"`
	SquadSquadplay               int64             `json:"squad_squadplay"`
	SquadSquadsize               int64             `json:"squad_squadsize"`
	SquadTeamLimit               int64             `json:"squad_team_limit"`
	SquadTotalSpend              int64             `json:"squad_total_spend"`
	UICurrencyMultiplier         int64             `json:"ui_currency_multiplier"`
	UIUseSpecialShirts           bool              `json:"ui_use_special_shirts"`
	UISpecialShirtExclusions     []json.RawMessage `json:"ui_special_shirt_exclusions"`
	StatsFormDays                int64             `json:"stats_form_days"`
	SysViceCaptainEnabled        bool              `json:"sys_vice_captain_enabled"`
	TransfersCap                 int64             `json:"transfers_cap"`
	TransfersSellOnFee           float64           `json:"transfers_sell_on_fee"`
	LeagueH2HTiebreakStats       []string          `json:"league_h2h_tiebreak_stats"`
	Timezone                     string            `json:"timezone"`
}

// Phase is a scoring phase of the season, such as a calendar month
type Phase struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	StartEvent int64  `json:"start_event"`
	StopEvent  int64  `json:"stop_event"`
}

// bootstrapSnapshot returns the cached bootstrap data, fetching it on first
// use. Concurrent first calls may each fetch; the last write wins and every
// caller sees a complete snapshot.
func (c *Client) bootstrapSnapshot(ctx context.Context) (*BootstrapStatic, error) {
	c.mu.RLock()
	bootstrap := c.bootstrap
	c.mu.RUnlock()
	if bootstrap != nil {
		return bootstrap, nil
	}

	bootstrap, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.bootstrap = bootstrap
	c.mu.Unlock()
	return bootstrap, nil
}

// RefreshBootstrap discards the cached bootstrap data and fetches a fresh
// snapshot for the lookup helpers.
func (c *Client) RefreshBootstrap(ctx context.Context) error {
	bootstrap, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.bootstrap = bootstrap
	c.mu.Unlock()
	return nil
}

// GetStaticGameweeks returns all gameweeks of the season
func (c *Client) GetStaticGameweeks(ctx context.Context) ([]Gameweek, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(bootstrap.Events), nil
}

// GetStaticGameweek returns a single gameweek by ID
func (c *Client) GetStaticGameweek(ctx context.Context, gameweekID int64) (*Gameweek, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bootstrap.Events {
		if bootstrap.Events[i].ID == gameweekID {
			gameweek := bootstrap.Events[i]
			return &gameweek, nil
		}
	}
	return nil, fmt.Errorf("gameweek %d: %w", gameweekID, ErrNotFound)
}

// GetAllPlayers returns every player in the game
func (c *Client) GetAllPlayers(ctx context.Context) ([]Player, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(bootstrap.Elements), nil
}

// GetPlayers returns the players with the given IDs. IDs without a matching
// player are skipped, so an empty ID list yields an empty result.
func (c *Client) GetPlayers(ctx context.Context, playerIDs []int64) ([]Player, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	players := make([]Player, 0, len(playerIDs))
	for i := range bootstrap.Elements {
		if slices.Contains(playerIDs, bootstrap.Elements[i].ID) {
			players = append(players, bootstrap.Elements[i])
		}
	}
	return players, nil
}

// GetPlayer returns a single player by ID
func (c *Client) GetPlayer(ctx context.Context, playerID int64) (*Player, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bootstrap.Elements {
		if bootstrap.Elements[i].ID == playerID {
			player := bootstrap.Elements[i]
			return &player, nil
		}
	}
	return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
}

// GetAllTeams returns every Premier League team
func (c *Client) GetAllTeams(ctx context.Context) ([]Team, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(bootstrap.Teams), nil
}

// GetTeams returns the teams with the given IDs. An empty ID list returns
// all teams.
func (c *Client) GetTeams(ctx context.Context, teamIDs []int64) ([]Team, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if len(teamIDs) == 0 {
		return slices.Clone(bootstrap.Teams), nil
	}

	teams := make([]Team, 0, len(teamIDs))
	for i := range bootstrap.Teams {
		if slices.Contains(teamIDs, bootstrap.Teams[i].ID) {
			teams = append(teams, bootstrap.Teams[i])
		}
	}
	return teams, nil
}

// GetTeam returns a single team by ID
func (c *Client) GetTeam(ctx context.Context, teamID int64) (*Team, error) {
	bootstrap, err := c.bootstrapSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bootstrap.Teams {
		if bootstrap.Teams[i].ID == teamID {
			team := bootstrap.Teams[i]
			return &team, nil
		}
	}
	return nil, fmt.Errorf("team %d: %w", teamID, ErrNotFound)
}
