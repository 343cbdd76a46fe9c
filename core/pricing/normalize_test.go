package pricing

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestTotalCost(t *testing.T) {
	cfg := Config{FeeOre: 8.6, VAT: 1.25, Timezone: "UTC"}
	// spot 1.00 SEK/kWh: (100 + 8.6/1.25) * 1.25 = 133.6
	if got := cfg.TotalCost(1.0); math.Abs(got-133.6) > 1e-9 {
		t.Fatalf("expected 133.6, got %v", got)
	}
	// with zero fee the formula reduces to spot öre times VAT
	cfg.FeeOre = 0
	if got := cfg.TotalCost(0.5); math.Abs(got-62.5) > 1e-9 {
		t.Fatalf("expected 62.5, got %v", got)
	}
}

func TestNormalizeSortsAndConverts(t *testing.T) {
	cfg := Config{FeeOre: 0, VAT: 1, Timezone: "UTC"}
	base := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	records := []SpotRecord{
		{TimeStart: base.Add(2 * time.Hour), Price: 0.3},
		{TimeStart: base, Price: 0.1},
		{TimeStart: base.Add(time.Hour), Price: 0.2},
	}
	prices, err := Normalize(records, cfg)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(prices) != 3 {
		t.Fatalf("expected 3 prices, got %d", len(prices))
	}
	for i := 1; i < len(prices); i++ {
		if !prices[i-1].Hour.Before(prices[i].Hour) {
			t.Fatalf("prices not strictly increasing: %v", prices)
		}
	}
	if prices[0].Cost != 10 || prices[2].Cost != 30 {
		t.Fatalf("unexpected costs: %v", prices)
	}
}

func TestNormalizeLocalTime(t *testing.T) {
	cfg := Config{FeeOre: 0, VAT: 1, Timezone: "Europe/Stockholm"}
	// 23:00 UTC is 00:00 next day in Stockholm (winter, CET)
	utc := time.Date(2025, 1, 14, 23, 0, 0, 0, time.UTC)
	prices, err := Normalize([]SpotRecord{{TimeStart: utc, Price: 0.1}}, cfg)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if prices[0].Hour.Day() != 15 || prices[0].Hour.Hour() != 0 {
		t.Fatalf("expected local midnight Jan 15, got %v", prices[0].Hour)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	cfg := Config{FeeOre: 8.6, VAT: 1.25, Timezone: "UTC"}
	if _, err := Normalize(nil, cfg); !errors.Is(err, ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	bad := []Config{
		{VAT: 0, Timezone: "UTC"},
		{VAT: 1.25, FeeOre: -1, Timezone: "UTC"},
		{VAT: 1.25, Timezone: "Mars/Olympus"},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
	good := Config{}
	good.SetDefaults()
	if err := good.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if good.FeeOre != 8.6 || good.VAT != 1.25 || good.Timezone != "Europe/Stockholm" {
		t.Fatalf("unexpected defaults: %+v", good)
	}
}
