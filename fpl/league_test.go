package fpl

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClassicLeague(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leagues-classic/321/standings/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"new_entries": {"has_next": false, "page": 1, "results": []},
			"last_updated_data": "2025-12-26T22:15:00Z",
			"league": {"id": 321, "name": "Second Chance", "created": "2025-07-10T09:20:00Z", "closed": false, "max_entries": null, "league_type": "x", "scoring": "c", "admin_entry": 999, "start_event": 1, "code_privacy": "p", "has_cup": false, "cup_league": null, "rank": null},
			"standings": {
				"has_next": true,
				"page": 1,
				"results": [
					{"id": 9001, "event_total": 71, "player_name": "Alex Morgan", "rank": 1, "last_rank": 2, "rank_sort": 1, "total": 1098, "entry": 12345, "entry_name": "Morgan XI"},
					{"id": 9002, "event_total": 64, "player_name": "Sam Reed", "rank": 2, "last_rank": 1, "rank_sort": 2, "total": 1091, "entry": 67890, "entry_name": "Reed It And Weep"}
				]
			}
		}`)
	})

	league, err := client.GetClassicLeague(context.Background(), 321)
	require.NoError(t, err)

	assert.Equal(t, "Second Chance", league.League.Name)
	assert.Equal(t, int64(999), league.League.AdminEntry)
	assert.True(t, league.Standings.HasNext)
	require.Len(t, league.Standings.Results, 2)

	top := league.Standings.Results[0]
	assert.Equal(t, int64(1), top.Rank)
	assert.Equal(t, int64(2), top.LastRank)
	assert.Equal(t, "Morgan XI", top.EntryName)
	assert.Equal(t, int64(1098), top.Total)
}

func TestGetH2HLeague(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leagues-h2h-matches/league/456/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"has_next": false,
			"page": 1,
			"results": [
				{"id": 5501, "entry_1_entry": 12345, "entry_1_name": "Morgan XI", "entry_1_player_name": "Alex Morgan", "entry_1_points": 71, "entry_1_win": 10, "entry_1_draw": 2, "entry_1_loss": 4, "entry_1_total": 32,
					"entry_2_entry": 67890, "entry_2_name": "Reed It And Weep", "entry_2_player_name": "Sam Reed", "entry_2_points": 64, "entry_2_win": 9, "entry_2_draw": 1, "entry_2_loss": 6, "entry_2_total": 28,
					"is_knockout": false, "league": 456, "winner": null, "seed_value": null, "event": 16, "tiebreak": null, "is_bye": false, "knockout_name": ""}
			]
		}`)
	})

	league, err := client.GetH2HLeague(context.Background(), 456)
	require.NoError(t, err)
	require.Len(t, league.Results, 1)

	match := league.Results[0]
	assert.Equal(t, int64(16), match.Event)
	assert.Equal(t, "Morgan XI", match.Entry1Name)
	assert.Equal(t, int64(71), match.Entry1Points)
	assert.Equal(t, "Sam Reed", match.Entry2PlayerName)
	assert.False(t, match.IsKnockout)
}
