package fpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// bodySnippet limits how much of an error response body is kept on a
// StatusError.
const bodySnippet = 512

// Client is a Fantasy Premier League API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger

	mu        sync.RWMutex
	bootstrap *BootstrapStatic
}

// NewClient creates a new FPL API client. Without options it talks to the
// public API with a 30 second timeout.
func NewClient(opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: options.timeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		httpClient: httpClient,
		userAgent:  options.userAgent,
		logger:     options.logger,
	}
}

// getJSON performs a GET request against the API and decodes the JSON
// response into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &RequestError{URL: requestURL, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("url", requestURL).Msg("fetching")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{URL: requestURL, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet := string(body)
		if len(snippet) > bodySnippet {
			snippet = snippet[:bodySnippet]
		}
		return &StatusError{URL: requestURL, StatusCode: resp.StatusCode, Body: snippet}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{URL: requestURL, Err: err}
	}

	return nil
}

// GetBootstrapStatic fetches the bootstrap-static summary: gameweeks, teams,
// players, game settings. It always hits the API; the snapshot used by the
// lookup helpers is managed separately.
func (c *Client) GetBootstrapStatic(ctx context.Context) (*BootstrapStatic, error) {
	var bootstrap BootstrapStatic
	if err := c.getJSON(ctx, "/bootstrap-static/", nil, &bootstrap); err != nil {
		return nil, err
	}
	return &bootstrap, nil
}

// GetFixtures fetches all fixtures for the current season
func (c *Client) GetFixtures(ctx context.Context) ([]Fixture, error) {
	var fixtures []Fixture
	if err := c.getJSON(ctx, "/fixtures/", nil, &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}

// GetGameweekFixtures fetches the fixtures of a single gameweek
func (c *Client) GetGameweekFixtures(ctx context.Context, gameweek int64) ([]Fixture, error) {
	params := url.Values{}
	params.Set("event", fmt.Sprintf("%d", gameweek))

	var fixtures []Fixture
	if err := c.getJSON(ctx, "/fixtures/", params, &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}

// GetFixture fetches a single fixture by ID. The fixtures endpoint has no
// per-fixture form, so this resolves the fixture's gameweek from the full
// list and then picks it out of that gameweek's fixtures.
func (c *Client) GetFixture(ctx context.Context, fixtureID int64) (*Fixture, error) {
	fixtures, err := c.GetFixtures(ctx)
	if err != nil {
		return nil, err
	}

	var gameweek int64
	found := false
	for i := range fixtures {
		if fixtures[i].ID == fixtureID {
			if fixtures[i].Event == nil {
				return nil, fmt.Errorf("fixture %d is not scheduled to a gameweek: %w", fixtureID, ErrNotFound)
			}
			gameweek = *fixtures[i].Event
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("fixture %d: %w", fixtureID, ErrNotFound)
	}

	gameweekFixtures, err := c.GetGameweekFixtures(ctx, gameweek)
	if err != nil {
		return nil, err
	}
	for i := range gameweekFixtures {
		if gameweekFixtures[i].ID == fixtureID {
			return &gameweekFixtures[i], nil
		}
	}
	return nil, fmt.Errorf("fixture %d: %w", fixtureID, ErrNotFound)
}

// GetLiveGameweek fetches the live scores of a gameweek
func (c *Client) GetLiveGameweek(ctx context.Context, gameweek int64) (*LiveGameweek, error) {
	var live LiveGameweek
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%d/live", gameweek), nil, &live); err != nil {
		return nil, err
	}
	return &live, nil
}

// GetUser fetches a manager's entry summary
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	var user User
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserPicks fetches a manager's squad picks for a gameweek
func (c *Client) GetUserPicks(ctx context.Context, userID, gameweek int64) (*UserPicks, error) {
	var picks UserPicks
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/event/%d/picks/", userID, gameweek), nil, &picks); err != nil {
		return nil, err
	}
	return &picks, nil
}

// GetUserTransfers fetches a manager's full transfer history
func (c *Client) GetUserTransfers(ctx context.Context, userID int64) ([]Transfer, error) {
	var transfers []Transfer
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/transfers/", userID), nil, &transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

// GetClassicLeague fetches a classic league's standings
func (c *Client) GetClassicLeague(ctx context.Context, leagueID int64) (*ClassicLeague, error) {
	var league ClassicLeague
	if err := c.getJSON(ctx, fmt.Sprintf("/leagues-classic/%d/standings/", leagueID), nil, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

// GetH2HLeague fetches a head-to-head league's matches
func (c *Client) GetH2HLeague(ctx context.Context, leagueID int64) (*H2HLeague, error) {
	var league H2HLeague
	if err := c.getJSON(ctx, fmt.Sprintf("/leagues-h2h-matches/league/%d/", leagueID), nil, &league); err != nil {
		return nil, err
	}
	return &league, nil
}
