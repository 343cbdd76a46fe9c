package planner

import (
	"testing"
	"time"

	"github.com/patriknoomi/laddtider/core/model"
)

func blockOf(prices []model.HourlyPrice, from, n int) Block {
	hours := prices[from : from+n]
	sum := 0.0
	for _, h := range hours {
		sum += h.Cost
	}
	return Block{Hours: hours, AvgCost: sum / float64(n)}
}

func runOf(prices []model.HourlyPrice, avg float64, from, n int) Run {
	hours := prices[from : from+n]
	value := 0.0
	for _, h := range hours {
		value += h.Cost - avg
	}
	return Run{Hours: hours, Value: value}
}

func TestAssignSkipsOverlapping(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	prices := series(t, start, 10, 12, 14, 50, 50, 50)

	cheap := blockOf(prices, 0, 3)
	overlap := blockOf(prices, 1, 3) // shares 01:00 and 02:00 with cheap
	cands := []candidate{
		{block: overlap, run: runOf(prices, overlap.AvgCost, 4, 2)},
		{block: cheap, run: runOf(prices, cheap.AvgCost, 3, 3)},
	}

	got := assign(cands)
	if len(got) != 1 {
		t.Fatalf("expected exactly one assignment, got %d", len(got))
	}
	if got[0].Block.AvgCost != cheap.AvgCost {
		t.Fatalf("cheapest block must win, got avg %v", got[0].Block.AvgCost)
	}
}

func TestAssignNoDoubleBooking(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	prices := series(t, start, 10, 10, 60, 60, 12, 12, 70, 70)

	b1 := blockOf(prices, 0, 2)
	b2 := blockOf(prices, 4, 2)
	cands := []candidate{
		{block: b1, run: runOf(prices, b1.AvgCost, 2, 2)},
		{block: b2, run: runOf(prices, b2.AvgCost, 6, 2)},
	}

	got := assign(cands)
	if len(got) != 2 {
		t.Fatalf("disjoint candidates must both commit, got %d", len(got))
	}
	seen := make(map[int64]bool)
	for _, a := range got {
		for _, h := range append(append([]model.HourlyPrice{}, a.Block.Hours...), a.Discharge.Hours...) {
			if seen[h.Hour.Unix()] {
				t.Fatalf("hour %v booked twice", h.Hour)
			}
			seen[h.Hour.Unix()] = true
		}
	}
}

func TestAssignDeterministicTieBreak(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	prices := series(t, start, 10, 50, 10, 50)

	early := blockOf(prices, 0, 1)
	late := blockOf(prices, 2, 1) // same avg cost as early
	cands := []candidate{
		{block: late, run: runOf(prices, late.AvgCost, 3, 1)},
		{block: early, run: runOf(prices, early.AvgCost, 1, 1)},
	}

	got := assign(cands)
	if len(got) != 2 {
		t.Fatalf("expected both assignments, got %d", len(got))
	}
	if !got[0].Block.Start().Hour.Before(got[1].Block.Start().Hour) {
		t.Fatalf("equal-cost blocks must commit earliest first")
	}
}
