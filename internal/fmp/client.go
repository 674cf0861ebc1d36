// Package fmp is the HTTP collaborator for the Financial Modeling Prep API.
// Every dataset comes back as a JSON array of flat objects; the client
// returns them as aggregate.Record slices so the windowing engine and the
// presentation layer never parse provider payloads themselves.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"market-reports/internal/aggregate"
	"market-reports/internal/calendar"
	"market-reports/internal/logger"
)

// Client issues one GET per dataset request against the configured FMP
// endpoints. It is safe for sequential batch use; the reports never call it
// concurrently.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	limiter    *rateLimiter
}

// NewClient builds a client around the given endpoint configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		// 5 requests in flight budget, one replenished every 250ms.
		limiter: newRateLimiter(5, 250*time.Millisecond),
	}
}

// IndustryPerformance fetches the per-industry performance page for one
// date.
func (c *Client) IndustryPerformance(ctx context.Context, date time.Time) ([]aggregate.Record, error) {
	return c.fetchRecords(ctx, c.cfg.IndustryPerformanceURL, url.Values{
		"date": {date.Format(calendar.DateFormat)},
	})
}

// SectorPerformance fetches the per-sector performance page for one date.
func (c *Client) SectorPerformance(ctx context.Context, date time.Time) ([]aggregate.Record, error) {
	return c.fetchRecords(ctx, c.cfg.SectorPerformanceURL, url.Values{
		"date": {date.Format(calendar.DateFormat)},
	})
}

// EarningsCalendar fetches every earnings announcement between from and to
// inclusive, as one range call.
func (c *Client) EarningsCalendar(ctx context.Context, from, to time.Time) ([]aggregate.Record, error) {
	return c.fetchRecords(ctx, c.cfg.EarningsCalendarURL, url.Values{
		"from": {from.Format(calendar.DateFormat)},
		"to":   {to.Format(calendar.DateFormat)},
	})
}

// EarningsByDate fetches the announcements of a single day. This is the
// page shape the aggregation engine consumes.
func (c *Client) EarningsByDate(ctx context.Context, date time.Time) ([]aggregate.Record, error) {
	return c.EarningsCalendar(ctx, date, date)
}

// TopGainers fetches the day's biggest gainers.
func (c *Client) TopGainers(ctx context.Context) ([]aggregate.Record, error) {
	return c.fetchRecords(ctx, c.cfg.TopGainersURL, nil)
}

// TopLosers fetches the day's biggest losers.
func (c *Client) TopLosers(ctx context.Context) ([]aggregate.Record, error) {
	return c.fetchRecords(ctx, c.cfg.TopLosersURL, nil)
}

// AvailableIndustries fetches the industry universe as a lookup set. The
// endpoint returns [{"industry": "..."}, ...].
func (c *Client) AvailableIndustries(ctx context.Context) (map[string]bool, error) {
	records, err := c.fetchRecords(ctx, c.cfg.AvailableIndustriesURL, nil)
	if err != nil {
		return nil, err
	}

	industries := make(map[string]bool, len(records))
	for _, rec := range records {
		if name, ok := rec["industry"].(string); ok && name != "" {
			industries[name] = true
		}
	}
	return industries, nil
}

func (c *Client) fetchRecords(ctx context.Context, endpoint string, params url.Values) ([]aggregate.Record, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint URL not configured")
	}
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	// Endpoints from the environment may carry stale query strings; the
	// client owns all parameters.
	endpoint = strings.SplitN(endpoint, "?", 2)[0]
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.cfg.APIKey)
	fullURL := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug(ctx, "fetching provider page", "url", redactKey(fullURL, c.cfg.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}

	var records []aggregate.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}
	return records, nil
}

func redactKey(u, key string) string {
	if key == "" {
		return u
	}
	return strings.ReplaceAll(u, key, "API_KEY_HIDDEN")
}
