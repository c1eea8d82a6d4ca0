package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/weekplan/weekplan-lambda/internal/calendar"
	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/gateway"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
	util "github.com/weekplan/weekplan-lambda/internal/utils"
)

// failingGateway rejects every call with the same backend error.
type failingGateway struct{}

var errBackend = &gateway.Error{Message: "backend unavailable"}

func (failingGateway) FetchEvents(context.Context) ([]event.Event, error) { return nil, errBackend }
func (failingGateway) CreateEvent(context.Context, event.Event) (*event.Event, error) {
	return nil, errBackend
}
func (failingGateway) UpdateEvent(context.Context, event.Event) (*event.Event, error) {
	return nil, errBackend
}
func (failingGateway) DeleteEvent(context.Context, string) error { return errBackend }
func (failingGateway) FetchGoals(context.Context) ([]goal.Goal, error) {
	return nil, errBackend
}
func (failingGateway) FetchTasks(context.Context, string) ([]task.Task, error) {
	return nil, errBackend
}

// hookGateway runs a callback while a fetch is in flight.
type hookGateway struct {
	gateway.Gateway
	hook func()
}

func (g hookGateway) FetchEvents(ctx context.Context) ([]event.Event, error) {
	g.hook()
	return g.Gateway.FetchEvents(ctx)
}

func draftEvent() event.Event {
	start := util.NewLocalDateTime(time.Date(2025, time.April, 9, 9, 0, 0, 0, time.Local))
	return event.Event{
		Title:     "Standup",
		Category:  event.CategoryWork,
		Date:      "2025-04-09",
		StartTime: start,
		EndTime:   util.NewLocalDateTime(start.Add(time.Hour)),
	}
}

func TestOrchestratorFetchEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := calendar.NewStore()
		orch := calendar.NewOrchestrator(store, gateway.NewMemory())

		events, err := orch.FetchEvents(ctx)
		if err != nil {
			t.Fatalf("FetchEvents failed: %v", err)
		}

		state := store.Snapshot()
		if len(state.Events) != len(events) || len(events) == 0 {
			t.Errorf("store holds %d events, fetch returned %d", len(state.Events), len(events))
		}
		if state.Loading {
			t.Error("loading still set after fetch resolved")
		}
		if state.Error != "" {
			t.Errorf("error set on success: %q", state.Error)
		}
	})

	t.Run("LoadingVisibleWhileInFlight", func(t *testing.T) {
		store := calendar.NewStore()
		var observed bool
		gw := hookGateway{Gateway: gateway.NewMemory(), hook: func() {
			observed = store.Snapshot().Loading
		}}

		if _, err := calendar.NewOrchestrator(store, gw).FetchEvents(ctx); err != nil {
			t.Fatalf("FetchEvents failed: %v", err)
		}
		if !observed {
			t.Error("loading was false while the gateway call was in flight")
		}
	})

	t.Run("Failure", func(t *testing.T) {
		store := calendar.NewStore()
		orch := calendar.NewOrchestrator(store, failingGateway{})

		if _, err := orch.FetchEvents(ctx); err == nil {
			t.Fatal("FetchEvents succeeded against a failing gateway")
		}

		state := store.Snapshot()
		if state.Error == "" {
			t.Error("error not recorded in store")
		}
		if state.Loading {
			t.Error("loading still set after failure")
		}
	})

	t.Run("NewOperationClearsStaleError", func(t *testing.T) {
		store := calendar.NewStore()

		_, _ = calendar.NewOrchestrator(store, failingGateway{}).FetchEvents(ctx)
		if store.Snapshot().Error == "" {
			t.Fatal("failure did not record an error")
		}

		if _, err := calendar.NewOrchestrator(store, gateway.NewMemory()).FetchEvents(ctx); err != nil {
			t.Fatalf("FetchEvents failed: %v", err)
		}
		if got := store.Snapshot().Error; got != "" {
			t.Errorf("stale error survived a successful operation: %q", got)
		}
	})
}

func TestOrchestratorCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := calendar.NewStore()
		orch := calendar.NewOrchestrator(store, gateway.NewMemory())

		if _, err := orch.FetchEvents(ctx); err != nil {
			t.Fatalf("FetchEvents failed: %v", err)
		}
		before := len(store.Snapshot().Events)

		draft := draftEvent()
		store.OpenEventModal(&draft)

		created, err := orch.CreateEvent(ctx, draft)
		if err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if created.ID == "" {
			t.Error("created event has no gateway-assigned id")
		}

		state := store.Snapshot()
		if len(state.Events) != before+1 {
			t.Errorf("event count = %d, want %d", len(state.Events), before+1)
		}
		if state.IsEventModalOpen {
			t.Error("modal still open after successful create")
		}
		if state.Loading {
			t.Error("loading still set after create resolved")
		}
	})

	t.Run("Failure", func(t *testing.T) {
		store := calendar.NewStore()
		orch := calendar.NewOrchestrator(store, failingGateway{})

		draft := draftEvent()
		store.OpenEventModal(&draft)

		if _, err := orch.CreateEvent(ctx, draft); err == nil {
			t.Fatal("CreateEvent succeeded against a failing gateway")
		}

		state := store.Snapshot()
		if len(state.Events) != 0 {
			t.Errorf("failed create changed the event collection: %+v", state.Events)
		}
		if state.Error == "" {
			t.Error("error not recorded in store")
		}
		if state.Loading {
			t.Error("loading still set after failure")
		}
		if !state.IsEventModalOpen {
			t.Error("modal closed although the create failed")
		}
	})
}

func TestOrchestratorUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := calendar.NewStore()
	orch := calendar.NewOrchestrator(store, gateway.NewMemory())

	events, err := orch.FetchEvents(ctx)
	if err != nil {
		t.Fatalf("FetchEvents failed: %v", err)
	}

	t.Run("Update", func(t *testing.T) {
		moved := events[0]
		moved.Title = "Moved"

		updated, err := orch.UpdateEvent(ctx, moved)
		if err != nil {
			t.Fatalf("UpdateEvent failed: %v", err)
		}
		if updated.Title != "Moved" {
			t.Errorf("updated title = %q, want Moved", updated.Title)
		}

		state := store.Snapshot()
		if state.Events[0].Title != "Moved" {
			t.Errorf("store not updated: %+v", state.Events[0])
		}
		if state.IsEventModalOpen {
			t.Error("modal open after update")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		before := len(store.Snapshot().Events)

		if err := orch.DeleteEvent(ctx, events[1].ID); err != nil {
			t.Fatalf("DeleteEvent failed: %v", err)
		}

		state := store.Snapshot()
		if len(state.Events) != before-1 {
			t.Errorf("event count = %d, want %d", len(state.Events), before-1)
		}
		for _, ev := range state.Events {
			if ev.ID == events[1].ID {
				t.Error("deleted event still in store")
			}
		}

		// The slice FetchEvents handed out must survive the delete untouched.
		seen := map[string]int{}
		for _, ev := range events {
			seen[ev.ID]++
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("fetched slice contains event %q %d times after DeleteEvent", id, n)
			}
		}
	})
}

func TestOrchestratorFetchGoalsAndTasks(t *testing.T) {
	ctx := context.Background()
	store := calendar.NewStore()
	orch := calendar.NewOrchestrator(store, gateway.NewMemory())

	goals, err := orch.FetchGoals(ctx)
	if err != nil {
		t.Fatalf("FetchGoals failed: %v", err)
	}
	if len(goals) != 4 {
		t.Errorf("fetched %d goals, want 4", len(goals))
	}

	tasks, err := orch.FetchTasks(ctx, "3")
	if err != nil {
		t.Fatalf("FetchTasks failed: %v", err)
	}
	if len(tasks) != 4 {
		t.Errorf("fetched %d tasks for goal 3, want 4", len(tasks))
	}
	if got := len(store.Snapshot().Tasks); got != 4 {
		t.Errorf("store holds %d tasks, want 4", got)
	}

	empty, err := orch.FetchTasks(ctx, "99")
	if err != nil {
		t.Fatalf("FetchTasks failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("fetched %d tasks for unknown goal, want 0", len(empty))
	}
}
