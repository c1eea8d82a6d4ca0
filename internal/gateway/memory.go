package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
)

// Memory is a fixture-seeded gateway with no backend behind it. It serves
// the demo data and hands out uuid ids on create.
type Memory struct {
	mu     sync.Mutex
	events []event.Event
	goals  []goal.Goal
	tasks  []task.Task
}

var _ Gateway = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		events: FixtureEvents(),
		goals:  FixtureGoals(),
		tasks:  FixtureTasks(),
	}
}

func (m *Memory) FetchEvents(ctx context.Context) ([]event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]event.Event, len(m.events))
	copy(out, m.events)
	return out, nil
}

func (m *Memory) CreateEvent(ctx context.Context, draft event.Event) (*event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft.ID = uuid.NewString()
	m.events = append(m.events, draft)
	return &draft, nil
}

func (m *Memory) UpdateEvent(ctx context.Context, ev event.Event) (*event.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.events {
		if m.events[i].ID == ev.ID {
			m.events[i] = ev
			return &ev, nil
		}
	}
	return nil, &Error{Message: "event not found"}
}

func (m *Memory) DeleteEvent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.events[:0]
	for _, ev := range m.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	m.events = kept
	return nil
}

func (m *Memory) FetchGoals(ctx context.Context) ([]goal.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]goal.Goal, len(m.goals))
	copy(out, m.goals)
	return out, nil
}

func (m *Memory) FetchTasks(ctx context.Context, goalID string) ([]task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if goalID == "" || t.GoalID == goalID {
			out = append(out, t)
		}
	}
	return out, nil
}
