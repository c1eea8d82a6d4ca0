// Package gateway defines the data access contract the calendar core talks
// to, with an in-memory implementation for demo/offline use and an HTTP
// client for a real backend.
package gateway

import (
	"context"
	"fmt"

	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
)

// Gateway is the sole data source of the sync orchestrator. CreateEvent
// ignores any id on the draft and assigns its own; FetchTasks filters by
// goal when goalID is non-empty.
type Gateway interface {
	FetchEvents(ctx context.Context) ([]event.Event, error)
	CreateEvent(ctx context.Context, draft event.Event) (*event.Event, error)
	UpdateEvent(ctx context.Context, ev event.Event) (*event.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	FetchGoals(ctx context.Context) ([]goal.Goal, error)
	FetchTasks(ctx context.Context, goalID string) ([]task.Task, error)
}

// Error describes a failed gateway call. Message is human-readable and ends
// up in the store's error field.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}
