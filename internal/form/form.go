// Package form validates an event draft and routes it through the sync
// orchestrator: drafts without an id are created, the rest updated.
package form

import (
	"context"

	"github.com/weekplan/weekplan-lambda/internal/calendar"
	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/timegrid"
)

type Form struct {
	orch *calendar.Orchestrator
}

func New(orch *calendar.Orchestrator) *Form {
	return &Form{orch: orch}
}

// Validate checks a draft before it is submitted and normalizes its date to
// the calendar date of the start time.
func Validate(ev *event.Event) error {
	if ev.Title == "" {
		return event.ErrTitleRequired
	}
	if !ev.Category.IsValid() {
		return event.ErrInvalidCategory
	}
	if !ev.EndTime.After(ev.StartTime.Time) {
		return timegrid.ErrInvalidInterval
	}
	ev.Date = timegrid.DateOf(ev.StartTime.Time)
	return nil
}

// Submit validates the draft and creates or updates it depending on whether
// it already has an id.
func (f *Form) Submit(ctx context.Context, ev event.Event) (*event.Event, error) {
	if err := Validate(&ev); err != nil {
		return nil, err
	}
	if ev.IsDraft() {
		return f.orch.CreateEvent(ctx, ev)
	}
	return f.orch.UpdateEvent(ctx, ev)
}

func (f *Form) Delete(ctx context.Context, id string) error {
	return f.orch.DeleteEvent(ctx, id)
}
