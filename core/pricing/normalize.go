// Package pricing converts raw day-ahead spot prices into the all-in hourly
// costs the planner works with. The fee is stored VAT-inclusive, so its
// pre-VAT share is added to the spot price before VAT is reapplied to the
// whole sum.
package pricing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/patriknoomi/laddtider/core/model"
)

// ErrEmptyData signals that the price source returned no usable records.
// It is fatal for the whole planning run.
var ErrEmptyData = errors.New("no price data available")

// SpotRecord is one raw hour as delivered by the price source:
// the hour start and the bare spot price in SEK/kWh.
type SpotRecord struct {
	TimeStart time.Time
	Price     float64
}

// Config holds the price components applied on top of the spot price.
type Config struct {
	// FeeOre is the supplier fee in öre/kWh, VAT included.
	FeeOre float64 `json:"fee_ore"`
	// VAT is the VAT multiplier, e.g. 1.25 for 25%.
	VAT float64 `json:"vat"`
	// Timezone used for day-boundary reasoning, e.g. "Europe/Stockholm".
	Timezone string `json:"timezone"`
}

// SetDefaults applies the standard Swedish price components.
func (c *Config) SetDefaults() {
	if c.FeeOre == 0 {
		c.FeeOre = 8.6
	}
	if c.VAT == 0 {
		c.VAT = 1.25
	}
	if c.Timezone == "" {
		c.Timezone = "Europe/Stockholm"
	}
}

// Validate checks the price components.
func (c Config) Validate() error {
	if c.VAT <= 0 {
		return fmt.Errorf("vat multiplier must be positive, got %v", c.VAT)
	}
	if c.FeeOre < 0 {
		return fmt.Errorf("fee must not be negative, got %v", c.FeeOre)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// TotalCost converts a spot price in SEK/kWh to the all-in cost in öre/kWh.
func (c Config) TotalCost(spot float64) float64 {
	return (spot*100 + c.FeeOre/c.VAT) * c.VAT
}

// Normalize converts raw spot records into a chronologically sorted series of
// all-in hourly costs in the configured local zone. It returns ErrEmptyData
// when no records are supplied.
func Normalize(records []SpotRecord, cfg Config) ([]model.HourlyPrice, error) {
	if len(records) == 0 {
		return nil, ErrEmptyData
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	prices := make([]model.HourlyPrice, 0, len(records))
	for _, r := range records {
		prices = append(prices, model.HourlyPrice{
			Hour: r.TimeStart.In(loc).Truncate(time.Hour),
			Cost: cfg.TotalCost(r.Price),
		})
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].Hour.Before(prices[j].Hour) })
	return prices, nil
}
