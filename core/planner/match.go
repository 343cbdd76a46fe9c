package planner

import "github.com/patriknoomi/laddtider/core/model"

// Run is a contiguous discharge candidate following a charge block.
// Value is the summed premium over the block's average cost, in öre/kWh.
type Run struct {
	Hours []model.HourlyPrice
	Value float64
}

// matchDischarge finds the most profitable contiguous run of hours after the
// block whose cost clears the block's average by at least margin. Runs are
// capped at CapacityRatio hours per charge hour by taking the prefix, never
// cross the day boundary, and ties are broken towards the earliest start.
// The second return value is false when no hour qualifies.
func matchDischarge(block Block, prices []model.HourlyPrice, cfg Config) (Run, bool) {
	threshold := block.AvgCost + cfg.Margin()
	blockEnd := block.End()

	var qualifying []model.HourlyPrice
	for _, p := range prices {
		if !p.Hour.After(blockEnd.Hour) {
			continue
		}
		if !blockEnd.SameDay(p) {
			continue
		}
		if p.Cost >= threshold {
			qualifying = append(qualifying, p)
		}
	}
	if len(qualifying) == 0 {
		return Run{}, false
	}

	maxLen := cfg.CapacityRatio * len(block.Hours)
	var best Run
	found := false
	for i := 0; i < len(qualifying); {
		j := i + 1
		for j < len(qualifying) && qualifying[j-1].FollowedBy(qualifying[j]) {
			j++
		}
		run := qualifying[i:j]
		if len(run) > maxLen {
			run = run[:maxLen]
		}
		value := 0.0
		for _, p := range run {
			value += p.Cost - block.AvgCost
		}
		// Strict comparison keeps the earliest run on equal value.
		if !found || value > best.Value {
			best = Run{Hours: run, Value: value}
			found = true
		}
		i = j
	}
	return best, found
}
