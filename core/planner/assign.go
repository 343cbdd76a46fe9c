package planner

import (
	"sort"

	"github.com/patriknoomi/laddtider/core/model"
)

// Assignment is a committed pairing of one charge block with its discharge
// run. Immutable once returned by the assigner.
type Assignment struct {
	Block     Block
	Discharge Run
}

type candidate struct {
	block Block
	run   Run
}

// assign walks the candidates cheapest charging first and commits every pair
// whose hours are all still free. A candidate touching any already used hour
// is skipped whole; there are no partial assignments. The used-hours set is
// owned here and discarded when assignment finishes.
func assign(cands []candidate) []Assignment {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].block.AvgCost != cands[j].block.AvgCost {
			return cands[i].block.AvgCost < cands[j].block.AvgCost
		}
		return cands[i].block.Start().Hour.Before(cands[j].block.Start().Hour)
	})

	used := make(map[int64]struct{})
	taken := func(hours []model.HourlyPrice) bool {
		for _, h := range hours {
			if _, ok := used[h.Hour.Unix()]; ok {
				return true
			}
		}
		return false
	}
	mark := func(hours []model.HourlyPrice) {
		for _, h := range hours {
			used[h.Hour.Unix()] = struct{}{}
		}
	}

	var out []Assignment
	for _, c := range cands {
		if taken(c.block.Hours) || taken(c.run.Hours) {
			continue
		}
		mark(c.block.Hours)
		mark(c.run.Hours)
		out = append(out, Assignment{Block: c.block, Discharge: c.run})
	}
	return out
}
