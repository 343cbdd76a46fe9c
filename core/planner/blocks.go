package planner

import (
	"gonum.org/v1/gonum/stat"

	"github.com/patriknoomi/laddtider/core/model"
)

// Block is a candidate charging window of 1..MaxBlockHours consecutive
// hours, all on the same calendar day.
type Block struct {
	Hours   []model.HourlyPrice
	AvgCost float64
}

// Start returns the first hour of the block.
func (b Block) Start() model.HourlyPrice {
	return b.Hours[0]
}

// End returns the last hour of the block.
func (b Block) End() model.HourlyPrice {
	return b.Hours[len(b.Hours)-1]
}

// generateBlocks enumerates every candidate charge block: one anchored at
// each hour of the series, extended while the hours stay consecutive, on the
// same day, inside an allowed charge window and under the length cap. Short
// blocks near day boundaries are still emitted to give the matcher maximal
// coverage.
func generateBlocks(prices []model.HourlyPrice, cfg Config) []Block {
	blocks := make([]Block, 0, len(prices))
	for i, anchor := range prices {
		if !cfg.chargeAllowed(anchor.Hour.Hour()) {
			continue
		}
		hours := []model.HourlyPrice{anchor}
		for j := i + 1; j < len(prices) && len(hours) < cfg.MaxBlockHours; j++ {
			next := prices[j]
			last := hours[len(hours)-1]
			if !last.FollowedBy(next) || !last.SameDay(next) {
				break
			}
			if !cfg.chargeAllowed(next.Hour.Hour()) {
				break
			}
			hours = append(hours, next)
		}
		costs := make([]float64, len(hours))
		for k, h := range hours {
			costs[k] = h.Cost
		}
		blocks = append(blocks, Block{Hours: hours, AvgCost: stat.Mean(costs, nil)})
	}
	return blocks
}
