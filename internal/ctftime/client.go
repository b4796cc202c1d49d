package ctftime

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
	"ctfwatch/internal/structures"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// ErrSourceUnavailable marks a failed round-trip to the event source. It is
// the only error class surfaced to end users as an operation failure.
var ErrSourceUnavailable = errors.New("source unavailable")

type ClientInterface interface {
	FetchEvents(ctx context.Context, windowDays int) ([]models.RawEvent, error)
	FetchTeam(ctx context.Context, teamID string) (*models.Team, error)
	FetchTopTeams(ctx context.Context, year int) ([]models.TopTeam, error)
}

type Client struct {
	baseURL string
	limit   int
	client  *http.Client
	logger  providers.Logger
}

func NewClient(conf *structures.Config, logger providers.Logger) ClientInterface {
	return &Client{
		baseURL: conf.Source.BaseURL,
		limit:   conf.Source.Limit,
		logger:  logger,
		client: &http.Client{
			Timeout: conf.Source.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

// FetchEvents retrieves all events starting within the next windowDays days,
// bounded by the configured result limit (single page, no pagination).
func (c *Client) FetchEvents(ctx context.Context, windowDays int) ([]models.RawEvent, error) {
	now := time.Now().UTC()
	params := url.Values{}
	params.Set("limit", cast.ToString(c.limit))
	params.Set("start", cast.ToString(now.Unix()))
	params.Set("finish", cast.ToString(now.AddDate(0, 0, windowDays).Unix()))

	var events []models.RawEvent
	if err := c.getJSON(ctx, "/api/v1/events/?"+params.Encode(), &events); err != nil {
		return nil, err
	}

	c.logger.Infof(providers.TypeSource, "Retrieved %d events for the next %d days", len(events), windowDays)
	return events, nil
}

func (c *Client) FetchTeam(ctx context.Context, teamID string) (*models.Team, error) {
	var team models.Team
	if err := c.getJSON(ctx, "/api/v1/teams/"+url.PathEscape(teamID)+"/", &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// FetchTopTeams returns the leaderboard for the given year, or an empty
// slice when the source has no data for that year.
func (c *Client) FetchTopTeams(ctx context.Context, year int) ([]models.TopTeam, error) {
	byYear := make(map[string][]models.TopTeam)
	if err := c.getJSON(ctx, "/api/v1/top/?limit=10", &byYear); err != nil {
		return nil, err
	}
	return byYear[cast.ToString(year)], nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s for %s", ErrSourceUnavailable, resp.Status, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %s", ErrSourceUnavailable, err)
	}
	return nil
}
