package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/gateway"
	util "github.com/weekplan/weekplan-lambda/internal/utils"
)

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	// Method-qualified mux patterns ("GET /events") need Go 1.22+; dispatch
	// on r.Method instead so the fixture runs on the local Go 1.21 toolchain.
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(gateway.FixtureEvents())
		case http.MethodPost:
			var ev event.Event
			if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
				http.Error(w, "bad body", http.StatusBadRequest)
				return
			}
			ev.ID = "srv-1"
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(ev)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		goalID := r.URL.Query().Get("goalId")
		tasks := gateway.FixtureTasks()
		if goalID != "" {
			kept := tasks[:0]
			for _, tk := range tasks {
				if tk.GoalID == goalID {
					kept = append(kept, tk)
				}
			}
			tasks = kept
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tasks)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := fixtureServer(t)
	client := gateway.NewClient(srv.URL)

	t.Run("FetchEvents", func(t *testing.T) {
		events, err := client.FetchEvents(ctx)
		if err != nil {
			t.Fatalf("FetchEvents failed: %v", err)
		}
		if len(events) != 5 {
			t.Fatalf("fetched %d events, want 5", len(events))
		}
		if events[1].Title != "All-Team Kickoff" {
			t.Errorf("event 2 title = %q", events[1].Title)
		}
		want := util.NewLocalDateTime(time.Date(2025, time.April, 8, 9, 0, 0, 0, time.Local))
		if !events[1].StartTime.Equal(want) {
			t.Errorf("event 2 start = %v, want %v", events[1].StartTime, want)
		}
	})

	t.Run("CreateEventStripsDraftID", func(t *testing.T) {
		start := util.NewLocalDateTime(time.Date(2025, time.April, 9, 9, 0, 0, 0, time.Local))
		created, err := client.CreateEvent(ctx, event.Event{
			ID:        "client-side-junk",
			Title:     "Standup",
			Category:  event.CategoryWork,
			Date:      "2025-04-09",
			StartTime: start,
			EndTime:   util.NewLocalDateTime(start.Add(30 * time.Minute)),
		})
		if err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if created.ID != "srv-1" {
			t.Errorf("created id = %q, want the server-assigned srv-1", created.ID)
		}
		if created.Title != "Standup" {
			t.Errorf("created title = %q", created.Title)
		}
	})

	t.Run("FetchTasksPassesGoalFilter", func(t *testing.T) {
		tasks, err := client.FetchTasks(ctx, "3")
		if err != nil {
			t.Fatalf("FetchTasks failed: %v", err)
		}
		if len(tasks) != 4 {
			t.Errorf("fetched %d tasks for goal 3, want 4", len(tasks))
		}

		none, err := client.FetchTasks(ctx, "99")
		if err != nil {
			t.Fatalf("FetchTasks failed: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("fetched %d tasks for unknown goal, want 0", len(none))
		}
	})
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("JSONErrorBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "database is down"})
		}))
		defer srv.Close()

		_, err := gateway.NewClient(srv.URL).FetchEvents(ctx)
		var gwErr *gateway.Error
		if !errors.As(err, &gwErr) {
			t.Fatalf("err = %v, want *gateway.Error", err)
		}
		if gwErr.Message != "database is down" {
			t.Errorf("message = %q, want the backend's message", gwErr.Message)
		}
		if gwErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", gwErr.StatusCode)
		}
	})

	t.Run("NonJSONErrorBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "plain text panic", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := gateway.NewClient(srv.URL).FetchEvents(ctx)
		var gwErr *gateway.Error
		if !errors.As(err, &gwErr) {
			t.Fatalf("err = %v, want *gateway.Error", err)
		}
		if gwErr.Message != "something went wrong" {
			t.Errorf("message = %q, want the fallback message", gwErr.Message)
		}
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := gateway.NewClient(srv.URL).FetchEvents(ctx)
		var gwErr *gateway.Error
		if !errors.As(err, &gwErr) {
			t.Fatalf("err = %v, want *gateway.Error", err)
		}
	})
}
