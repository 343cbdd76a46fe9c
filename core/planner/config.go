package planner

import "fmt"

// Window restricts charging to a span of local hours. EndHour is exclusive:
// {0, 5} allows blocks anchored anywhere in 00:00-05:00.
type Window struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

func (w Window) contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// Config defines the planning parameters loaded from configuration.
type Config struct {
	// MaxBlockHours is the longest allowed charge block, in hours.
	MaxBlockHours int `json:"max_block_hours"`
	// CapacityRatio bounds the discharge run: at most CapacityRatio
	// discharge hours per charge hour in the funding block.
	CapacityRatio int `json:"capacity_ratio"`
	// RequiredMargin is the premium in öre/kWh a discharge hour must carry
	// over the block's average cost. When zero it is derived from
	// GridCostOre and RoundTripEfficiency.
	RequiredMargin float64 `json:"required_margin"`
	// GridCostOre is the fixed grid cost in öre/kWh used for margin
	// derivation.
	GridCostOre float64 `json:"grid_cost_ore"`
	// RoundTripEfficiency is the battery round-trip efficiency in (0, 1].
	RoundTripEfficiency float64 `json:"round_trip_efficiency"`
	// ChargeWindows, when non-empty, limits the hours a charge block may
	// occupy. Empty means any hour of the day may charge.
	ChargeWindows []Window `json:"charge_windows"`
}

// SetDefaults applies the stock home-battery parameters.
func (c *Config) SetDefaults() {
	if c.MaxBlockHours == 0 {
		c.MaxBlockHours = 3
	}
	if c.CapacityRatio == 0 {
		c.CapacityRatio = 3
	}
	if c.RequiredMargin == 0 && c.GridCostOre == 0 {
		c.GridCostOre = 86.375
	}
	if c.RequiredMargin == 0 && c.RoundTripEfficiency == 0 {
		c.RoundTripEfficiency = 0.857
	}
}

// Validate checks the planning parameters.
func (c Config) Validate() error {
	if c.MaxBlockHours < 1 {
		return fmt.Errorf("max_block_hours must be at least 1, got %d", c.MaxBlockHours)
	}
	if c.CapacityRatio < 1 {
		return fmt.Errorf("capacity_ratio must be at least 1, got %d", c.CapacityRatio)
	}
	if c.RequiredMargin < 0 {
		return fmt.Errorf("required_margin must not be negative, got %v", c.RequiredMargin)
	}
	if c.RequiredMargin == 0 {
		if c.RoundTripEfficiency <= 0 || c.RoundTripEfficiency > 1 {
			return fmt.Errorf("round_trip_efficiency must be in (0, 1], got %v", c.RoundTripEfficiency)
		}
		if c.GridCostOre <= 0 {
			return fmt.Errorf("grid_cost_ore must be positive to derive the margin, got %v", c.GridCostOre)
		}
	}
	for _, w := range c.ChargeWindows {
		if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour {
			return fmt.Errorf("invalid charge window %d-%d", w.StartHour, w.EndHour)
		}
	}
	return nil
}

// Margin returns the required discharge premium in öre/kWh, either as
// configured or derived from the grid cost and the round-trip loss.
func (c Config) Margin() float64 {
	if c.RequiredMargin > 0 {
		return c.RequiredMargin
	}
	return c.GridCostOre * (1 - c.RoundTripEfficiency)
}

// chargeAllowed reports whether a block may occupy the given local hour.
func (c Config) chargeAllowed(hour int) bool {
	if len(c.ChargeWindows) == 0 {
		return true
	}
	for _, w := range c.ChargeWindows {
		if w.contains(hour) {
			return true
		}
	}
	return false
}
