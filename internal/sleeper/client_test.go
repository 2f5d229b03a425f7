package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noahcwanger/fantasy-assistant/internal/cache"
	"github.com/noahcwanger/fantasy-assistant/internal/config"
)

const playersJSON = `{
	"4034": {"first_name": "Christian", "last_name": "McCaffrey", "full_name": "Christian McCaffrey", "position": "RB", "team": "SF"},
	"4046": {"first_name": "Patrick", "last_name": "Mahomes", "full_name": "Patrick Mahomes", "position": "QB", "team": "KC"},
	"4035": {"first_name": "Alvin", "last_name": "Kamara", "full_name": "Alvin Kamara", "position": "RB", "team": "NO"},
	"6794": {"first_name": "Justin", "last_name": "Jefferson", "full_name": "Justin Jefferson", "position": "WR", "team": "MIN"},
	"7564": {"first_name": "Ja'Marr", "last_name": "Chase", "full_name": "Ja'Marr Chase", "position": "WR", "team": "CIN"},
	"SF": {"first_name": "San Francisco", "last_name": "49ers", "position": "DEF", "team": "SF"}
}`

func newLeagueServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	playerCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/league/987654", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"league_id": "987654", "name": "Heisenberg Keeper League", "season": "2025", "status": "in_season", "total_rosters": 2}`))
	})
	mux.HandleFunc("/v1/league/987654/rosters", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"roster_id": 2, "owner_id": "u2", "players": ["4034", "6794", "X999"], "starters": ["4034", "0"]},
			{"roster_id": 1, "owner_id": "u1", "players": ["4046", "4035", "7564"], "starters": ["4046", "7564"]}
		]`))
	})
	mux.HandleFunc("/v1/league/987654/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"user_id": "u1", "display_name": "walter", "metadata": {"team_name": "Los Pollos Hermanos"}},
			{"user_id": "u2", "display_name": "jesse", "metadata": {}}
		]`))
	})
	mux.HandleFunc("/v1/league/badid", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})
	mux.HandleFunc("/v1/players/nfl", func(w http.ResponseWriter, r *http.Request) {
		playerCalls++
		w.Write([]byte(playersJSON))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, &playerCalls
}

func newTestClient(t *testing.T, endpoint string, store *cache.Cache) *Client {
	t.Helper()
	return NewClient(&config.SleeperConfig{Endpoint: endpoint, Timeout: 5 * time.Second}, store)
}

func TestPlayerName(t *testing.T) {
	tests := []struct {
		name   string
		player Player
		want   string
	}{
		{"full name wins", Player{FirstName: "Patrick", LastName: "Mahomes", FullName: "Patrick Mahomes"}, "Patrick Mahomes"},
		{"defense has no full name", Player{FirstName: "San Francisco", LastName: "49ers"}, "San Francisco 49ers"},
		{"last name only", Player{LastName: "Tucker"}, "Tucker"},
		{"zero player", Player{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.player.Name())
		})
	}
}

func TestLeague(t *testing.T) {
	ts, _ := newLeagueServer(t)
	c := newTestClient(t, ts.URL, nil)

	league, err := c.League(context.Background(), "987654")
	require.NoError(t, err)
	assert.Equal(t, "987654", league.LeagueID)
	assert.Equal(t, "Heisenberg Keeper League", league.Name)
	assert.Equal(t, "2025", league.Season)
	assert.Equal(t, 2, league.TotalRosters)
}

func TestLeagueNullBodyIsNotFound(t *testing.T) {
	ts, _ := newLeagueServer(t)
	c := newTestClient(t, ts.URL, nil)

	_, err := c.League(context.Background(), "badid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLeagueErrorStatus(t *testing.T) {
	ts, _ := newLeagueServer(t)
	c := newTestClient(t, ts.URL, nil)

	_, err := c.League(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestImportLeague(t *testing.T) {
	ts, _ := newLeagueServer(t)
	c := newTestClient(t, ts.URL, nil)

	imported, err := c.ImportLeague(context.Background(), "987654")
	require.NoError(t, err)

	assert.Equal(t, "Heisenberg Keeper League", imported.League.Name)
	require.Len(t, imported.Teams, 2)

	first := imported.Teams[0]
	assert.Equal(t, 1, first.RosterID)
	assert.Equal(t, "Los Pollos Hermanos", first.Owner, "team name should beat display name")
	assert.Equal(t, []string{"Patrick Mahomes", "Ja'Marr Chase"}, first.Starters)
	assert.Equal(t, []string{"Alvin Kamara"}, first.Bench)

	second := imported.Teams[1]
	assert.Equal(t, 2, second.RosterID)
	assert.Equal(t, "jesse", second.Owner, "empty team name falls back to display name")
	assert.Equal(t, []string{"Christian McCaffrey"}, second.Starters, "empty lineup slots are skipped")
	assert.Equal(t, []string{"Justin Jefferson", "X999"}, second.Bench, "unknown IDs pass through")
}

func TestImportLeagueUnknownLeague(t *testing.T) {
	ts, _ := newLeagueServer(t)
	c := newTestClient(t, ts.URL, nil)

	_, err := c.ImportLeague(context.Background(), "badid")
	assert.Error(t, err)
}

func TestPlayersUsesDailyCache(t *testing.T) {
	ts, playerCalls := newLeagueServer(t)

	mr := miniredis.RunT(t)
	store, err := cache.New("redis://" + mr.Addr())
	require.NoError(t, err)
	defer store.Close()

	c := newTestClient(t, ts.URL, store)
	ctx := context.Background()

	first, err := c.Players(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *playerCalls)
	assert.Equal(t, "Patrick Mahomes", first["4046"].Name())

	second, err := c.Players(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, *playerCalls, "second call should hit the cache")
	assert.Equal(t, first, second)

	assert.Equal(t, 24*time.Hour, mr.TTL(playersCacheKey))
}

func TestPlayersWithoutCacheFetchesEachTime(t *testing.T) {
	ts, playerCalls := newLeagueServer(t)
	c := newTestClient(t, ts.URL, nil)

	ctx := context.Background()
	_, err := c.Players(ctx)
	require.NoError(t, err)
	_, err = c.Players(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, *playerCalls)
}
