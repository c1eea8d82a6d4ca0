package calendar

import (
	"sync"
	"time"

	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
	"github.com/weekplan/weekplan-lambda/internal/timegrid"
)

// Store owns the one authoritative State. All mutation goes through the
// named transitions below; readers take a Snapshot. The mutex makes each
// transition atomic for concurrent callers.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{
		state: State{
			SelectedDate: timegrid.DateOf(time.Now()),
			CurrentView:  ViewWeek,
		},
	}
}

// Snapshot returns a copy of the state. The slices are copied so callers can
// iterate without holding the store lock.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Events = append([]event.Event(nil), s.state.Events...)
	snap.Goals = append([]goal.Goal(nil), s.state.Goals...)
	snap.Tasks = append([]task.Task(nil), s.state.Tasks...)
	if s.state.EditingEvent != nil {
		ev := *s.state.EditingEvent
		snap.EditingEvent = &ev
	}
	return snap
}

// SetEvents replaces the event collection. The slice is copied so the store
// never shares a backing array with its callers.
func (s *Store) SetEvents(events []event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Events = append([]event.Event(nil), events...)
}

func (s *Store) AddEvent(ev event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Events = append(s.state.Events, ev)
}

// UpdateEvent replaces the stored event with the same id. Unknown ids are a
// silent no-op.
func (s *Store) UpdateEvent(ev event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Events {
		if s.state.Events[i].ID == ev.ID {
			s.state.Events[i] = ev
			return
		}
	}
}

// DeleteEvent removes the event with the given id. Unknown ids are a silent
// no-op.
func (s *Store) DeleteEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]event.Event, 0, len(s.state.Events))
	for _, ev := range s.state.Events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	s.state.Events = kept
}

func (s *Store) SetGoals(goals []goal.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Goals = append([]goal.Goal(nil), goals...)
}

func (s *Store) SetTasks(tasks []task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tasks = append([]task.Task(nil), tasks...)
}

func (s *Store) SetSelectedGoal(goalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedGoal = goalID
}

func (s *Store) SetSelectedDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedDate = date
}

func (s *Store) SetCurrentView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentView = v
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
}

func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = msg
}

// OpenEventModal opens the edit dialog for the given event. A nil target
// means "new event", though callers normally pass a pre-filled draft.
func (s *Store) OpenEventModal(ev *event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsEventModalOpen = true
	s.state.EditingEvent = ev
}

// CloseEventModal closes the dialog and clears the editing target together.
func (s *Store) CloseEventModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsEventModalOpen = false
	s.state.EditingEvent = nil
}
