package model

import (
	"fmt"
	"time"
)

// Action is what the battery does during a schedule range.
type Action int

const (
	ActionCharge Action = iota
	ActionDischarge
)

// String returns the action name used in logs and exports.
func (a Action) String() string {
	switch a {
	case ActionCharge:
		return "charge"
	case ActionDischarge:
		return "discharge"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Symbol returns the single-character marker used on schedule lines.
func (a Action) Symbol() string {
	if a == ActionCharge {
		return "+"
	}
	return "-"
}

// Range is one contiguous schedule entry. End is exclusive: it points one
// hour past the last included hour.
type Range struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Action Action    `json:"action"`
}

// Hours returns the number of whole hours covered by the range.
func (r Range) Hours() int {
	return int(r.End.Sub(r.Start) / time.Hour)
}

// Schedule is the final plan for one day: an ordered list of merged
// charge/discharge ranges. An empty Ranges slice is a valid result, meaning
// no profitable cycle was found.
type Schedule struct {
	PlanID string    `json:"plan_id"`
	Day    time.Time `json:"day"`
	Ranges []Range   `json:"ranges"`
}
