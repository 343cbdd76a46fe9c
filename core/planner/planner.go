package planner

import (
	"errors"
	"fmt"

	"github.com/patriknoomi/laddtider/core/logger"
	"github.com/patriknoomi/laddtider/core/model"
)

// Planner runs the block/match/assign pipeline over one day of prices.
type Planner struct {
	cfg Config
	log logger.Logger
}

// New validates the configuration and returns a Planner.
func New(cfg Config, log logger.Logger) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("planner config: %w", err)
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Planner{cfg: cfg, log: log}, nil
}

// Plan selects non-overlapping charge/discharge assignments for the given
// normalized price series. The series must be non-empty and sorted; an empty
// result means no cycle cleared the required margin.
func (p *Planner) Plan(prices []model.HourlyPrice) ([]Assignment, error) {
	if len(prices) == 0 {
		return nil, errors.New("planner: empty price series")
	}

	blocks := generateBlocks(prices, p.cfg)
	p.log.Debugf("generated %d candidate blocks from %d hours", len(blocks), len(prices))

	cands := make([]candidate, 0, len(blocks))
	for _, b := range blocks {
		run, ok := matchDischarge(b, prices, p.cfg)
		if !ok {
			continue
		}
		cands = append(cands, candidate{block: b, run: run})
	}
	p.log.Debugf("%d blocks matched a discharge run (margin %.2f öre)", len(cands), p.cfg.Margin())

	assignments := assign(cands)
	for _, a := range assignments {
		p.log.Infof("cycle: charge %s-%s avg %.1f öre, discharge %d h value %.1f öre",
			a.Block.Start().Hour.Format("15:04"), a.Block.End().Hour.Format("15:04"),
			a.Block.AvgCost, len(a.Discharge.Hours), a.Discharge.Value)
	}
	return assignments, nil
}
