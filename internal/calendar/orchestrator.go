package calendar

import (
	"context"

	"github.com/weekplan/weekplan-lambda/internal/config"
	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/gateway"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
)

// Orchestrator runs every gateway call on behalf of the UI: it toggles the
// loading flag around the call, records failures in the store error, applies
// successful results, and closes the edit dialog after a successful
// mutation. A new operation clears the previous error up front so the UI
// never shows a stale failure next to fresh data.
type Orchestrator struct {
	store *Store
	gw    gateway.Gateway
}

func NewOrchestrator(store *Store, gw gateway.Gateway) *Orchestrator {
	return &Orchestrator{store: store, gw: gw}
}

func (o *Orchestrator) begin() {
	o.store.SetError("")
	o.store.SetLoading(true)
}

func (o *Orchestrator) fail(ctx context.Context, action string, err error) {
	config.WithContext(ctx).WithError(err).Errorf("Failed to %s", action)
	o.store.SetError(err.Error())
}

func (o *Orchestrator) FetchEvents(ctx context.Context) ([]event.Event, error) {
	o.begin()
	defer o.store.SetLoading(false)

	events, err := o.gw.FetchEvents(ctx)
	if err != nil {
		o.fail(ctx, "fetch events", err)
		return nil, err
	}

	o.store.SetEvents(events)
	return events, nil
}

func (o *Orchestrator) FetchGoals(ctx context.Context) ([]goal.Goal, error) {
	o.begin()
	defer o.store.SetLoading(false)

	goals, err := o.gw.FetchGoals(ctx)
	if err != nil {
		o.fail(ctx, "fetch goals", err)
		return nil, err
	}

	o.store.SetGoals(goals)
	return goals, nil
}

// FetchTasks loads the tasks of one goal, or all tasks when goalID is empty.
func (o *Orchestrator) FetchTasks(ctx context.Context, goalID string) ([]task.Task, error) {
	o.begin()
	defer o.store.SetLoading(false)

	tasks, err := o.gw.FetchTasks(ctx, goalID)
	if err != nil {
		o.fail(ctx, "fetch tasks", err)
		return nil, err
	}

	o.store.SetTasks(tasks)
	return tasks, nil
}

func (o *Orchestrator) CreateEvent(ctx context.Context, draft event.Event) (*event.Event, error) {
	o.begin()
	defer o.store.SetLoading(false)

	created, err := o.gw.CreateEvent(ctx, draft)
	if err != nil {
		o.fail(ctx, "create event", err)
		return nil, err
	}

	o.store.AddEvent(*created)
	o.store.CloseEventModal()
	return created, nil
}

func (o *Orchestrator) UpdateEvent(ctx context.Context, ev event.Event) (*event.Event, error) {
	o.begin()
	defer o.store.SetLoading(false)

	updated, err := o.gw.UpdateEvent(ctx, ev)
	if err != nil {
		o.fail(ctx, "update event", err)
		return nil, err
	}

	o.store.UpdateEvent(*updated)
	o.store.CloseEventModal()
	return updated, nil
}

func (o *Orchestrator) DeleteEvent(ctx context.Context, id string) error {
	o.begin()
	defer o.store.SetLoading(false)

	if err := o.gw.DeleteEvent(ctx, id); err != nil {
		o.fail(ctx, "delete event", err)
		return err
	}

	o.store.DeleteEvent(id)
	o.store.CloseEventModal()
	return nil
}
