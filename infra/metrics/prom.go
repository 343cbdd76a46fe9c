package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	coremetrics "github.com/patriknoomi/laddtider/core/metrics"
)

// PromSink records planning runs as Prometheus metrics and pushes them to a
// Pushgateway. Pushing fits the one-shot planner: there is no long-lived
// process to scrape.
type PromSink struct {
	registry       *prometheus.Registry
	cycles         prometheus.Gauge
	chargeHours    prometheus.Gauge
	dischargeHours prometheus.Gauge
	expectedValue  prometheus.Gauge
	pusher         *push.Pusher
}

// NewPromSink builds a sink pushing to the given gateway under the job name.
func NewPromSink(cfg coremetrics.Config) *PromSink {
	reg := prometheus.NewRegistry()
	s := &PromSink{
		registry: reg,
		cycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "laddtider_plan_cycles",
			Help: "Number of charge/discharge cycles in the last plan",
		}),
		chargeHours: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "laddtider_plan_charge_hours",
			Help: "Charge hours committed in the last plan",
		}),
		dischargeHours: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "laddtider_plan_discharge_hours",
			Help: "Discharge hours committed in the last plan",
		}),
		expectedValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "laddtider_plan_expected_value_ore",
			Help: "Summed discharge premium over charge cost, öre/kWh",
		}),
	}
	reg.MustRegister(s.cycles, s.chargeHours, s.dischargeHours, s.expectedValue)
	s.pusher = push.New(cfg.PushgatewayURL, cfg.PushJob).Gatherer(reg)
	return s
}

// RecordPlan sets the plan gauges and pushes them, grouped by plan day.
func (s *PromSink) RecordPlan(ev coremetrics.PlanEvent) error {
	s.cycles.Set(float64(ev.Cycles))
	s.chargeHours.Set(float64(ev.ChargeHours))
	s.dischargeHours.Set(float64(ev.DischargeHours))
	s.expectedValue.Set(ev.ExpectedValue)
	return s.pusher.
		Grouping("day", ev.Day.Format("2006-01-02")).
		Push()
}
