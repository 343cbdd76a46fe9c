// Package spot fetches day-ahead hourly spot prices from the
// elprisetjustnu.se price API.
package spot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/patriknoomi/laddtider/core/pricing"
	"github.com/patriknoomi/laddtider/infra/logger"
)

// Config defines the price API endpoint and zone.
type Config struct {
	BaseURL        string `json:"base_url"`
	Zone           string `json:"zone"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies the public endpoint and the Stockholm price zone.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://www.elprisetjustnu.se/api/v1/prices"
	}
	if c.Zone == "" {
		c.Zone = "SE3"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 10
	}
}

// Validate checks the endpoint settings.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Zone == "" {
		return fmt.Errorf("zone is required")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	return nil
}

// record is the wire format of one hour in the API response.
type record struct {
	TimeStart string  `json:"time_start"`
	SEKPerKWh float64 `json:"SEK_per_kWh"`
}

// Client fetches one day of hourly spot prices. A failed or empty fetch is
// fatal for the run; the client never retries.
type Client struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewClient creates a price API client.
func NewClient(cfg Config) *Client {
	cfg.SetDefaults()
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    logger.New("spot-client"),
	}
}

// FetchDay retrieves the spot prices for the given calendar day.
func (c *Client) FetchDay(ctx context.Context, day time.Time) ([]pricing.SpotRecord, error) {
	url := fmt.Sprintf("%s/%d/%02d-%02d_%s.json",
		c.cfg.BaseURL, day.Year(), int(day.Month()), day.Day(), c.cfg.Zone)
	c.log.Debugf("fetching prices: GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prices for %s: %w", day.Format("2006-01-02"), err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warnf("close response body: %v", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch prices for %s: unexpected status %s", day.Format("2006-01-02"), resp.Status)
	}

	var raw []record
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode price response: %w", err)
	}

	records := make([]pricing.SpotRecord, 0, len(raw))
	for _, r := range raw {
		ts, err := time.Parse(time.RFC3339, r.TimeStart)
		if err != nil {
			return nil, fmt.Errorf("parse time_start %q: %w", r.TimeStart, err)
		}
		records = append(records, pricing.SpotRecord{TimeStart: ts, Price: r.SEKPerKWh})
	}
	c.log.Infof("fetched %d hourly prices for %s (%s)", len(records), day.Format("2006-01-02"), c.cfg.Zone)
	return records, nil
}
