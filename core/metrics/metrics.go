// Package metrics defines the planning metrics contract. Concrete sinks
// (Prometheus pushgateway, InfluxDB) live under infra/metrics.
package metrics

import "time"

// PlanEvent summarizes one completed planning run.
type PlanEvent struct {
	PlanID         string
	Day            time.Time
	Cycles         int
	ChargeHours    int
	DischargeHours int
	// ExpectedValue is the summed discharge premium over charge cost for
	// the whole plan, in öre/kWh.
	ExpectedValue float64
	Time          time.Time
}

// Sink receives planning events.
type Sink interface {
	RecordPlan(PlanEvent) error
}

// NopSink discards all events.
type NopSink struct{}

// RecordPlan implements Sink.
func (NopSink) RecordPlan(PlanEvent) error { return nil }
