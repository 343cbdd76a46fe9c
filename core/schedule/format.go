// Package schedule turns committed planner assignments into the final
// per-day schedule and renders it in the inverter's window syntax.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/patriknoomi/laddtider/core/model"
	"github.com/patriknoomi/laddtider/core/planner"
)

// weekdayMask is the fixed every-day bitmask expected by the inverter.
const weekdayMask = "1234567"

type event struct {
	hour   time.Time
	action model.Action
}

// Build merges all committed charge and discharge hours into minimal
// contiguous same-action ranges, ordered chronologically. Range ends are
// exclusive: one hour past the last included hour.
func Build(planID string, day time.Time, assignments []planner.Assignment) model.Schedule {
	var events []event
	for _, a := range assignments {
		for _, h := range a.Block.Hours {
			events = append(events, event{hour: h.Hour, action: model.ActionCharge})
		}
		for _, h := range a.Discharge.Hours {
			events = append(events, event{hour: h.Hour, action: model.ActionDischarge})
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].hour.Before(events[j].hour) })

	sched := model.Schedule{PlanID: planID, Day: day}
	for i := 0; i < len(events); {
		j := i + 1
		for j < len(events) &&
			events[j].action == events[i].action &&
			events[j].hour.Sub(events[j-1].hour) == time.Hour {
			j++
		}
		sched.Ranges = append(sched.Ranges, model.Range{
			Start:  events[i].hour,
			End:    events[j-1].hour.Add(time.Hour),
			Action: events[i].action,
		})
		i = j
	}
	return sched
}

// Line renders one range as HH:MM-HH:MM/1234567/<+|->. An exclusive end that
// rolls into the next calendar day is clamped to 23:59 so the displayed
// window never crosses midnight.
func Line(r model.Range) string {
	end := r.End.Format("15:04")
	if r.Start.Day() != r.End.Day() {
		end = "23:59"
	}
	return fmt.Sprintf("%s-%s/%s/%s", r.Start.Format("15:04"), end, weekdayMask, r.Action.Symbol())
}

// Lines renders the whole schedule, one line per range. An empty schedule
// yields no lines.
func Lines(s model.Schedule) []string {
	out := make([]string, 0, len(s.Ranges))
	for _, r := range s.Ranges {
		out = append(out, Line(r))
	}
	return out
}
