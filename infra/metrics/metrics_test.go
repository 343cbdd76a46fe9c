package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	coremetrics "github.com/patriknoomi/laddtider/core/metrics"
)

func planEvent() coremetrics.PlanEvent {
	return coremetrics.PlanEvent{
		PlanID:         "p1",
		Day:            time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Cycles:         2,
		ChargeHours:    5,
		DischargeHours: 6,
		ExpectedValue:  123.4,
		Time:           time.Date(2025, 1, 14, 13, 0, 0, 0, time.UTC),
	}
}

func TestPromSinkPushes(t *testing.T) {
	var body string
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := NewPromSink(coremetrics.Config{PushgatewayURL: srv.URL, PushJob: "laddtider"})
	if err := sink.RecordPlan(planEvent()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(path, "/job/laddtider") {
		t.Errorf("push path missing job: %s", path)
	}
	if !strings.Contains(path, "day/2025-01-15") {
		t.Errorf("push path missing day grouping: %s", path)
	}
	for _, metric := range []string{"laddtider_plan_cycles", "laddtider_plan_charge_hours", "laddtider_plan_discharge_hours", "laddtider_plan_expected_value_ore"} {
		if !strings.Contains(body, metric) {
			t.Errorf("pushed body missing %s", metric)
		}
	}
}

func TestInfluxSinkWritesPoint(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(coremetrics.Config{InfluxURL: srv.URL, InfluxToken: "t", InfluxOrg: "o", InfluxBucket: "b"})
	defer sink.Close()
	if err := sink.RecordPlan(planEvent()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(body, "battery_plan") {
		t.Errorf("missing measurement: %s", body)
	}
	if !strings.Contains(body, "plan_id=p1") || !strings.Contains(body, "day=2025-01-15") {
		t.Errorf("missing tags: %s", body)
	}
	if !strings.Contains(body, "discharge_hours=6i") {
		t.Errorf("missing fields: %s", body)
	}
}

func TestInfluxSinkFallbackOnBadHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(coremetrics.Config{InfluxEnabled: true, InfluxURL: srv.URL})
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink fallback, got %T", sink)
	}
}

type failSink struct{ err error }

func (f failSink) RecordPlan(coremetrics.PlanEvent) error { return f.err }

type countSink struct{ n int }

func (c *countSink) RecordPlan(coremetrics.PlanEvent) error {
	c.n++
	return nil
}

func TestMultiSinkFanout(t *testing.T) {
	a := &countSink{}
	b := &countSink{}
	m := NewMultiSink(a, b)
	if err := m.RecordPlan(planEvent()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if a.n != 1 || b.n != 1 {
		t.Fatalf("fanout missed a sink: %d %d", a.n, b.n)
	}

	boom := errors.New("boom")
	m = NewMultiSink(failSink{err: boom}, a)
	if err := m.RecordPlan(planEvent()); !errors.Is(err, boom) {
		t.Fatalf("expected first error, got %v", err)
	}
}

func TestFromConfig(t *testing.T) {
	if _, ok := FromConfig(coremetrics.Config{}).(coremetrics.NopSink); !ok {
		t.Fatalf("empty config must yield NopSink")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	if _, ok := FromConfig(coremetrics.Config{PushgatewayURL: srv.URL, PushJob: "j"}).(*PromSink); !ok {
		t.Fatalf("expected PromSink")
	}
}
