// Package sleeper imports league rosters from the public Sleeper API so users
// can prefill the starters and bench lists instead of typing them. The player
// catalog endpoint is large, so it is cached for a day when Redis is on.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/noahcwanger/fantasy-assistant/internal/cache"
	"github.com/noahcwanger/fantasy-assistant/internal/config"
)

const (
	playersCacheKey = "sleeper:players:nfl"
	playersCacheTTL = 24 * time.Hour

	// Sleeper fills unused lineup slots with "0".
	emptySlot = "0"
)

type League struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

type Roster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Metadata    struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

type Player struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// Name returns the display name for a player. Team defenses have no
// full_name, only first/last ("San Francisco" / "49ers").
func (p Player) Name() string {
	if p.FullName != "" {
		return p.FullName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// TeamRoster is one fantasy team with player IDs already resolved to names.
type TeamRoster struct {
	RosterID int      `json:"roster_id"`
	Owner    string   `json:"owner"`
	Starters []string `json:"starters"`
	Bench    []string `json:"bench"`
}

type LeagueImport struct {
	League League       `json:"league"`
	Teams  []TeamRoster `json:"teams"`
}

type Client struct {
	endpoint string
	client   *http.Client
	store    *cache.Cache
}

func NewClient(cfg *config.SleeperConfig, store *cache.Cache) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		client:   &http.Client{Timeout: cfg.Timeout},
		store:    store,
	}
}

func (c *Client) fetch(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("creating sleeper request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sleeper API returned %d for %s: %s", resp.StatusCode, path, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// League fetches league metadata. Sleeper answers unknown IDs with a literal
// null body, which decodes to a zero value.
func (c *Client) League(ctx context.Context, leagueID string) (*League, error) {
	var league *League
	if err := c.fetch(ctx, "/v1/league/"+leagueID, &league); err != nil {
		return nil, err
	}
	if league == nil || league.LeagueID == "" {
		return nil, fmt.Errorf("league %s not found", leagueID)
	}
	return league, nil
}

func (c *Client) Rosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var rosters []Roster
	if err := c.fetch(ctx, "/v1/league/"+leagueID+"/rosters", &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

func (c *Client) Users(ctx context.Context, leagueID string) ([]User, error) {
	var users []User
	if err := c.fetch(ctx, "/v1/league/"+leagueID+"/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Players returns the full NFL player catalog keyed by Sleeper player ID,
// served from cache when possible. The upstream payload runs to several
// megabytes, and Sleeper asks integrators to fetch it at most daily.
func (c *Client) Players(ctx context.Context) (map[string]Player, error) {
	var players map[string]Player
	if err := c.store.Get(ctx, playersCacheKey, &players); err == nil {
		return players, nil
	}

	if err := c.fetch(ctx, "/v1/players/nfl", &players); err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, playersCacheKey, players, playersCacheTTL); err != nil {
		return players, nil
	}
	return players, nil
}

// ImportLeague assembles every team in a league with starters and bench
// resolved to player names. IDs missing from the catalog pass through
// unchanged so the lists stay complete.
func (c *Client) ImportLeague(ctx context.Context, leagueID string) (*LeagueImport, error) {
	league, err := c.League(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	rosters, err := c.Rosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	users, err := c.Users(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	players, err := c.Players(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]string, len(users))
	for _, u := range users {
		name := u.DisplayName
		if u.Metadata.TeamName != "" {
			name = u.Metadata.TeamName
		}
		owners[u.UserID] = name
	}

	teams := make([]TeamRoster, 0, len(rosters))
	for _, r := range rosters {
		team := TeamRoster{
			RosterID: r.RosterID,
			Owner:    owners[r.OwnerID],
			Starters: []string{},
			Bench:    []string{},
		}

		starting := make(map[string]bool, len(r.Starters))
		for _, id := range r.Starters {
			if id == emptySlot {
				continue
			}
			starting[id] = true
			team.Starters = append(team.Starters, playerName(players, id))
		}
		for _, id := range r.Players {
			if id == emptySlot || starting[id] {
				continue
			}
			team.Bench = append(team.Bench, playerName(players, id))
		}

		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].RosterID < teams[j].RosterID })

	return &LeagueImport{League: *league, Teams: teams}, nil
}

func playerName(players map[string]Player, id string) string {
	p, ok := players[id]
	if !ok {
		return id
	}
	if name := p.Name(); name != "" {
		return name
	}
	return id
}
