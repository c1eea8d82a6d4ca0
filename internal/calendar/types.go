// Package calendar holds the client-side core of the weekly planner: the
// single state container every view reads from, and the sync orchestrator
// that mediates between that state and the data gateway.
package calendar

import (
	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
)

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewYear  View = "year"
)

func (v View) IsValid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth, ViewYear:
		return true
	}
	return false
}

// State is everything the planner UI renders from. SelectedGoal and Error
// use the empty string for "none"; EditingEvent nil means the modal (when
// open) is creating a new event.
type State struct {
	Events       []event.Event
	Goals        []goal.Goal
	Tasks        []task.Task
	SelectedGoal string
	SelectedDate string
	CurrentView  View
	Loading      bool
	Error        string

	IsEventModalOpen bool
	EditingEvent     *event.Event
}
