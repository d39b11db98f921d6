package fpl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bootstrapJSON = `{
	"events": [
		{"id": 1, "name": "Gameweek 1", "deadline_time": "2025-08-15T17:30:00Z", "average_entry_score": 57, "finished": true, "data_checked": true, "is_previous": true},
		{"id": 2, "name": "Gameweek 2", "deadline_time": "2025-08-22T17:30:00Z", "is_current": true, "chip_plays": [{"chip_name": "bboost", "num_played": 144521}]}
	],
	"game_settings": {"league_join_private_max": 30, "squad_squadsize": 15, "squad_total_spend": 1000, "transfers_sell_on_fee": 0.5, "timezone": "UTC"},
	"phases": [{"id": 1, "name": "Overall", "start_event": 1, "stop_event": 38}],
	"teams": [
		{"code": 3, "id": 1, "name": "Arsenal", "short_name": "ARS", "strength": 5, "pulse_id": 1},
		{"code": 14, "id": 12, "name": "Liverpool", "short_name": "LIV", "strength": 5, "pulse_id": 10}
	],
	"total_players": 11023456,
	"elements": [
		{"id": 310, "web_name": "Saka", "first_name": "Bukayo", "second_name": "Saka", "element_type": 3, "now_cost": 105, "status": "a", "team": 1, "total_points": 212, "form": "7.2", "selected_by_percent": "45.1"},
		{"id": 427, "web_name": "Salah", "first_name": "Mohamed", "second_name": "Salah", "element_type": 3, "now_cost": 131, "status": "a", "team": 12, "total_points": 344, "form": "9.1", "selected_by_percent": "62.8"},
		{"id": 182, "web_name": "Raya", "first_name": "David", "second_name": "Raya", "element_type": 1, "now_cost": 56, "status": "i", "team": 1, "total_points": 140, "form": "4.0", "news": "Knee injury - Expected back 01 Sep"}
	],
	"element_stats": [{"label": "Minutes played", "name": "minutes"}],
	"element_types": [
		{"id": 1, "plural_name": "Goalkeepers", "plural_name_short": "GKP", "singular_name": "Goalkeeper", "singular_name_short": "GKP", "squad_select": 2, "squad_min_play": 1, "squad_max_play": 1, "element_count": 71}
	]
}`

func newBootstrapClient(t *testing.T) (*Client, *atomic.Int64) {
	t.Helper()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bootstrap-static/", r.URL.Path)
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, bootstrapJSON)
	}))
	t.Cleanup(server.Close)

	return NewClient(WithBaseURL(server.URL)), &requests
}

func TestGetBootstrapStatic(t *testing.T) {
	client, _ := newBootstrapClient(t)

	bootstrap, err := client.GetBootstrapStatic(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(11023456), bootstrap.TotalPlayers)
	assert.Len(t, bootstrap.Events, 2)
	assert.Len(t, bootstrap.Teams, 2)
	assert.Len(t, bootstrap.Elements, 3)
	assert.Equal(t, int64(15), bootstrap.GameSettings.SquadSquadsize)
	assert.Equal(t, 0.5, bootstrap.GameSettings.TransfersSellOnFee)
	require.Len(t, bootstrap.Events[1].ChipPlays, 1)
	assert.Equal(t, "bboost", bootstrap.Events[1].ChipPlays[0].ChipName)
}

func TestGetBootstrapStaticAlwaysFetches(t *testing.T) {
	client, requests := newBootstrapClient(t)

	_, err := client.GetBootstrapStatic(context.Background())
	require.NoError(t, err)
	_, err = client.GetBootstrapStatic(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), requests.Load())
}

func TestLookupsShareOneSnapshot(t *testing.T) {
	client, requests := newBootstrapClient(t)
	ctx := context.Background()

	_, err := client.GetPlayer(ctx, 310)
	require.NoError(t, err)
	_, err = client.GetAllTeams(ctx)
	require.NoError(t, err)
	_, err = client.GetStaticGameweeks(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), requests.Load())
}

func TestRefreshBootstrap(t *testing.T) {
	client, requests := newBootstrapClient(t)
	ctx := context.Background()

	_, err := client.GetPlayer(ctx, 310)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requests.Load())

	require.NoError(t, client.RefreshBootstrap(ctx))
	assert.Equal(t, int64(2), requests.Load())

	_, err = client.GetPlayer(ctx, 310)
	require.NoError(t, err)
	assert.Equal(t, int64(2), requests.Load())
}

func TestGetPlayer(t *testing.T) {
	client, _ := newBootstrapClient(t)

	player, err := client.GetPlayer(context.Background(), 427)
	require.NoError(t, err)

	assert.Equal(t, "Salah", player.WebName)
	assert.Equal(t, "Mohamed Salah", player.FullName())
	assert.Equal(t, 13.1, player.Price())
	assert.Equal(t, "MID", player.Position())
	assert.True(t, player.Available())
}

func TestGetPlayerNotFound(t *testing.T) {
	client, _ := newBootstrapClient(t)

	_, err := client.GetPlayer(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPlayers(t *testing.T) {
	client, _ := newBootstrapClient(t)

	players, err := client.GetPlayers(context.Background(), []int64{310, 182})
	require.NoError(t, err)

	require.Len(t, players, 2)
	assert.Equal(t, "Saka", players[0].WebName)
	assert.Equal(t, "Raya", players[1].WebName)
}

func TestGetPlayersEmptyIDs(t *testing.T) {
	client, _ := newBootstrapClient(t)

	players, err := client.GetPlayers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestGetPlayersSkipsUnknownIDs(t *testing.T) {
	client, _ := newBootstrapClient(t)

	players, err := client.GetPlayers(context.Background(), []int64{310, 9999})
	require.NoError(t, err)

	require.Len(t, players, 1)
	assert.Equal(t, "Saka", players[0].WebName)
}

func TestGetAllPlayers(t *testing.T) {
	client, _ := newBootstrapClient(t)

	players, err := client.GetAllPlayers(context.Background())
	require.NoError(t, err)
	assert.Len(t, players, 3)
}

func TestGetTeam(t *testing.T) {
	client, _ := newBootstrapClient(t)

	team, err := client.GetTeam(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Liverpool", team.Name)
	assert.Equal(t, "LIV", team.ShortName)
}

func TestGetTeamNotFound(t *testing.T) {
	client, _ := newBootstrapClient(t)

	_, err := client.GetTeam(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTeamsEmptyIDsReturnsAll(t *testing.T) {
	client, _ := newBootstrapClient(t)

	teams, err := client.GetTeams(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestGetTeamsByID(t *testing.T) {
	client, _ := newBootstrapClient(t)

	teams, err := client.GetTeams(context.Background(), []int64{1})
	require.NoError(t, err)

	require.Len(t, teams, 1)
	assert.Equal(t, "Arsenal", teams[0].Name)
}

func TestGetStaticGameweek(t *testing.T) {
	client, _ := newBootstrapClient(t)

	gameweek, err := client.GetStaticGameweek(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "Gameweek 2", gameweek.Name)
	assert.True(t, gameweek.IsCurrent)

	deadline, err := gameweek.Deadline()
	require.NoError(t, err)
	assert.Equal(t, 2025, deadline.Year())
}

func TestGetStaticGameweekNotFound(t *testing.T) {
	client, _ := newBootstrapClient(t)

	_, err := client.GetStaticGameweek(context.Background(), 39)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentLookups(t *testing.T) {
	client, requests := newBootstrapClient(t)
	ctx := context.Background()

	_, err := client.GetAllPlayers(ctx)
	require.NoError(t, err)

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func(i int) {
			if i%2 == 0 {
				_, err := client.GetPlayer(ctx, 310)
				done <- err
				return
			}
			_, err := client.GetTeam(ctx, 1)
			done <- err
		}(i)
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	assert.Equal(t, int64(1), requests.Load())
}

func TestPlayerString(t *testing.T) {
	player := Player{ID: 310, FirstName: "Bukayo", SecondName: "Saka"}
	assert.Equal(t, "<id: 310, name: Bukayo Saka>", player.String())
}

func TestPlayerPosition(t *testing.T) {
	tests := []struct {
		elementType int64
		want        string
	}{
		{1, "GKP"},
		{2, "DEF"},
		{3, "MID"},
		{4, "FWD"},
		{7, "UNK"},
	}

	for _, tt := range tests {
		player := Player{ElementType: tt.elementType}
		assert.Equal(t, tt.want, player.Position())
	}
}

func TestPlayerAvailable(t *testing.T) {
	assert.True(t, Player{Status: PlayerStatusAvailable}.Available())
	assert.False(t, Player{Status: PlayerStatusInjured}.Available())
	assert.False(t, Player{Status: PlayerStatusSuspended}.Available())
}
