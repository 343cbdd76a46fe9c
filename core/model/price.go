package model

import "time"

// HourlyPrice is the all-in cost of one hour of energy, fee and VAT included.
// Hour is truncated to the start of the hour in the configured local zone.
// Values are immutable once produced by the pricing normalizer.
type HourlyPrice struct {
	Hour time.Time `json:"hour"`
	// Cost in öre/kWh.
	Cost float64 `json:"cost"`
}

// SameDay reports whether both prices fall on the same calendar day.
func (p HourlyPrice) SameDay(o HourlyPrice) bool {
	y1, m1, d1 := p.Hour.Date()
	y2, m2, d2 := o.Hour.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FollowedBy reports whether o starts exactly one hour after p.
func (p HourlyPrice) FollowedBy(o HourlyPrice) bool {
	return o.Hour.Sub(p.Hour) == time.Hour
}
