// Package nbacdn is the wire client for the NBA CDN liveData JSON API.
// Responses flow through the byte cache keyed by request URL, with
// freshness governed by cache.TTLForURL.
package nbacdn

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nba-worm-tracker/internal/cache"
	"nba-worm-tracker/internal/datausage"
	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/logging"
	"nba-worm-tracker/internal/metrics"
	"nba-worm-tracker/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL     string
	ScheduleURL string
	HTTPClient  *http.Client
	Cache       cache.Store
	Usage       *datausage.Counter
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// Client fetches scoreboard, play-by-play, box score, schedule and
// standings resources and maps them to domain models. It implements
// providers.DataProvider.
type Client struct {
	baseURL     string
	scheduleURL string
	httpClient  httpDoer
	cache       cache.Store
	usage       *datausage.Counter
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		scheduleURL: normalizeScheduleURL(cfg.ScheduleURL),
		httpClient:  resolveHTTPClient(cfg.HTTPClient),
		cache:       cfg.Cache,
		usage:       cfg.Usage,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		now:         time.Now,
	}
}

// FetchScoreboard retrieves the daily scoreboard.
func (c *Client) FetchScoreboard(ctx context.Context) (domain.Scoreboard, error) {
	url := c.scoreboardURL()
	body, err := c.fetch(ctx, url, providers.FetchDefault)
	if err != nil {
		return domain.Scoreboard{}, err
	}
	var resp scoreboardResponse
	if err := c.decode(url, body, &resp); err != nil {
		return domain.Scoreboard{}, err
	}
	return mapScoreboard(resp), nil
}

// FetchPlayByPlay retrieves the action list for a game. In cache-only
// mode a miss returns (nil, nil); the caller treats that as "no data
// yet", not a failure.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID string, mode providers.FetchMode) (*domain.PlayByPlay, error) {
	url := c.playByPlayURL(gameID)
	body, err := c.fetch(ctx, url, mode)
	if err != nil {
		if mode == providers.FetchCacheOnly && errors.Is(err, providers.ErrNotInCache) {
			return nil, nil
		}
		return nil, err
	}
	var resp playByPlayResponse
	if err := c.decode(url, body, &resp); err != nil {
		return nil, err
	}
	return mapPlayByPlay(resp), nil
}

// FetchBoxScore retrieves the box score slice for a game.
func (c *Client) FetchBoxScore(ctx context.Context, gameID string) (domain.BoxScoreInfo, error) {
	url := c.boxScoreURL(gameID)
	body, err := c.fetch(ctx, url, providers.FetchDefault)
	if err != nil {
		return domain.BoxScoreInfo{}, err
	}
	var resp boxScoreResponse
	if err := c.decode(url, body, &resp); err != nil {
		return domain.BoxScoreInfo{}, err
	}
	return mapBoxScore(resp), nil
}

// FetchSchedule retrieves the full season schedule.
func (c *Client) FetchSchedule(ctx context.Context) (domain.Schedule, error) {
	url := c.scheduleURL
	body, err := c.fetch(ctx, url, providers.FetchDefault)
	if err != nil {
		return domain.Schedule{}, err
	}
	var resp scheduleResponse
	if err := c.decode(url, body, &resp); err != nil {
		return domain.Schedule{}, err
	}
	return mapSchedule(resp), nil
}

// FetchStandings retrieves season win/loss records by team id.
func (c *Client) FetchStandings(ctx context.Context) ([]domain.TeamStanding, error) {
	url := standingsURL(c.now())
	body, err := c.fetch(ctx, url, providers.FetchDefault)
	if err != nil {
		return nil, err
	}
	var resp standingsResponse
	if err := c.decode(url, body, &resp); err != nil {
		return nil, err
	}
	return mapStandings(resp), nil
}

// fetch returns the response body for url under the given mode.
func (c *Client) fetch(ctx context.Context, url string, mode providers.FetchMode) ([]byte, error) {
	switch mode {
	case providers.FetchCacheOnly:
		body, ok := c.cacheGet(ctx, url)
		if !ok {
			return nil, providers.ErrNotInCache
		}
		return body, nil

	case providers.FetchForce:
		body, err := c.fetchNetwork(ctx, url)
		if err == nil {
			return body, nil
		}
		// A forced refresh mid-game must not regress to nothing on a
		// transient blip; fall back to the cache-permitting path.
		logging.Warn(c.logger, "forced fetch failed, falling back to cache",
			logging.FieldProvider, providerName, "url", url, "error", err)
		if cached, ok := c.cacheGet(ctx, url); ok {
			return cached, nil
		}
		return nil, err

	default:
		if cached, ok := c.cacheGet(ctx, url); ok {
			return cached, nil
		}
		return c.fetchNetwork(ctx, url)
	}
}

func (c *Client) cacheGet(ctx context.Context, url string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, ok, err := c.cache.Get(ctx, url)
	if err != nil {
		logging.Warn(c.logger, "cache read failed", logging.FieldProvider, providerName, "url", url, "error", err)
		return nil, false
	}
	return body, ok
}

func (c *Client) fetchNetwork(ctx context.Context, url string) ([]byte, error) {
	start := c.now()
	body, err := c.doRequest(ctx, url)
	if c.metrics != nil {
		c.metrics.RecordProviderAttempt(providerName, time.Since(start), err)
	}
	if err != nil {
		return nil, err
	}

	if c.usage != nil {
		c.usage.Add(int64(len(body)))
	}
	if c.cache != nil {
		if setErr := c.cache.Set(ctx, url, body, cache.TTLForURL(url)); setErr != nil {
			logging.Warn(c.logger, "cache write failed", logging.FieldProvider, providerName, "url", url, "error", setErr)
		}
	}
	return body, nil
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &providers.NetworkError{URL: url, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.HTTPError{
			URL:     url,
			Code:    resp.StatusCode,
			Message: strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.NetworkError{URL: url, Err: err}
	}
	return body, nil
}

func (c *Client) decode(url string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &providers.DecodeError{URL: url, Err: err}
	}
	return nil
}
