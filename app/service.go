// Package app wires the price source, planner and output channels into a
// single one-shot planning service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/patriknoomi/laddtider/config"
	coremetrics "github.com/patriknoomi/laddtider/core/metrics"
	"github.com/patriknoomi/laddtider/core/model"
	"github.com/patriknoomi/laddtider/core/planner"
	"github.com/patriknoomi/laddtider/core/pricing"
	"github.com/patriknoomi/laddtider/core/schedule"
	"github.com/patriknoomi/laddtider/infra/logger"
	"github.com/patriknoomi/laddtider/infra/metrics"
	"github.com/patriknoomi/laddtider/infra/mqtt"
	"github.com/patriknoomi/laddtider/infra/spot"
)

// PriceSource supplies one day of raw spot records.
type PriceSource interface {
	FetchDay(ctx context.Context, day time.Time) ([]pricing.SpotRecord, error)
}

// Publisher delivers the finished schedule to an external consumer.
type Publisher interface {
	Publish(model.Schedule) error
	Close()
}

// Service runs the full pipeline once: fetch, normalize, plan, format,
// publish, record.
type Service struct {
	cfg     *config.Config
	source  PriceSource
	planner *planner.Planner
	sink    coremetrics.Sink
	pub     Publisher
	log     logger.Logger
}

// New builds a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	return NewWithSource(cfg, spot.NewClient(cfg.Spot))
}

// NewWithSource builds a Service against a custom price source.
func NewWithSource(cfg *config.Config, source PriceSource) (*Service, error) {
	logg := logger.New("service")
	pl, err := planner.New(cfg.Planner, logger.New("planner"))
	if err != nil {
		return nil, err
	}
	svc := &Service{
		cfg:     cfg,
		source:  source,
		planner: pl,
		sink:    metrics.FromConfig(cfg.Metrics),
		log:     logg,
	}
	if cfg.MQTT.Enabled {
		pub, err := mqtt.NewSchedulePublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("schedule publisher: %w", err)
		}
		svc.pub = pub
	}
	return svc, nil
}

// Run plans the given day and returns the resulting schedule. Fetch failures
// and empty price series are fatal; metrics sink failures are logged but do
// not fail the run.
func (s *Service) Run(ctx context.Context, day time.Time) (model.Schedule, error) {
	planID := uuid.NewString()
	s.log.Infof("planning %s (plan %s)", day.Format("2006-01-02"), planID)

	records, err := s.source.FetchDay(ctx, day)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("acquire prices: %w", err)
	}
	prices, err := pricing.Normalize(records, s.cfg.Pricing)
	if err != nil {
		return model.Schedule{}, err
	}

	assignments, err := s.planner.Plan(prices)
	if err != nil {
		return model.Schedule{}, err
	}
	sched := schedule.Build(planID, prices[0].Hour, assignments)

	if s.pub != nil {
		if err := s.pub.Publish(sched); err != nil {
			return model.Schedule{}, err
		}
	}
	if err := s.sink.RecordPlan(planEvent(planID, sched.Day, assignments)); err != nil {
		s.log.Warnf("record plan metrics: %v", err)
	}
	return sched, nil
}

// Close releases external connections.
func (s *Service) Close() {
	if s.pub != nil {
		s.pub.Close()
	}
}

func planEvent(planID string, day time.Time, assignments []planner.Assignment) coremetrics.PlanEvent {
	ev := coremetrics.PlanEvent{
		PlanID: planID,
		Day:    day,
		Cycles: len(assignments),
		Time:   time.Now(),
	}
	for _, a := range assignments {
		ev.ChargeHours += len(a.Block.Hours)
		ev.DischargeHours += len(a.Discharge.Hours)
		ev.ExpectedValue += a.Discharge.Value
	}
	return ev
}
