package fpl

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	FPLBaseURL = "https://fantasy.premierleague.com"

	// RequestTimeout bounds a single request attempt. Kept short so a
	// cold-cache fan-out across the whole league still finishes inside
	// the web layer's route timeout.
	RequestTimeout = 10 * time.Second

	retryMax = 2
)

// ErrUnavailable indicates the FPL API returned a non-200 response. The site
// routinely 503s during gameweek deadline processing.
var ErrUnavailable = errors.New("fpl api unavailable")

type Client interface {
	Bootstrap() (*Bootstrap, error)
	Live(gameweek int) (map[int]LiveStats, error)
	Standings(leagueID int) (*Standings, error)
	Picks(entryID, gameweek int) (*Picks, error)
	Transfers(entryID int) ([]Transfer, error)
	History(entryID int) (*EntryHistory, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.HTTPClient.Timeout = RequestTimeout
	rc.Logger = nil

	c := &client{
		url:        FPLBaseURL,
		httpClient: rc.StandardClient(),
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

func (c *client) Bootstrap() (*Bootstrap, error) {
	var parsed bootstrapResponse
	if err := c.get(&parsed, "/api/bootstrap-static/"); err != nil {
		return nil, err
	}
	return parsed.toBootstrap(), nil
}

func (c *client) Live(gameweek int) (map[int]LiveStats, error) {
	var parsed liveResponse
	if err := c.get(&parsed, "/api/event/%d/live/", gameweek); err != nil {
		return nil, err
	}

	stats := make(map[int]LiveStats, len(parsed.Elements))
	for _, e := range parsed.Elements {
		stats[e.ID] = LiveStats{
			TotalPoints: e.Stats.TotalPoints,
			Minutes:     e.Stats.Minutes,
		}
	}
	return stats, nil
}

func (c *client) Standings(leagueID int) (*Standings, error) {
	var parsed standingsResponse
	if err := c.get(&parsed, "/api/leagues-classic/%d/standings/", leagueID); err != nil {
		return nil, err
	}
	return parsed.toStandings(), nil
}

func (c *client) Picks(entryID, gameweek int) (*Picks, error) {
	var parsed Picks
	if err := c.get(&parsed, "/api/entry/%d/event/%d/picks/", entryID, gameweek); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (c *client) Transfers(entryID int) ([]Transfer, error) {
	var parsed []Transfer
	if err := c.get(&parsed, "/api/entry/%d/transfers/", entryID); err != nil {
		return nil, err
	}
	return parsed, nil
}

func (c *client) History(entryID int) (*EntryHistory, error) {
	var parsed historyResponse
	if err := c.get(&parsed, "/api/entry/%d/history/", entryID); err != nil {
		return nil, err
	}
	return parsed.toHistory(), nil
}

func (c *client) get(res any, path string, args ...any) error {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, c.url+p, nil)
	if err != nil {
		return fmt.Errorf("error creating fpl http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending fpl http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrUnavailable, p, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		return fmt.Errorf("error parsing response from %s: %w", p, err)
	}
	return nil
}
