package grid

import (
	"time"

	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/task"
	"github.com/weekplan/weekplan-lambda/internal/timegrid"
	util "github.com/weekplan/weekplan-lambda/internal/utils"
)

// defaultDuration is the span of every draft placed on the grid; the form
// lets the user adjust it before saving.
const defaultDuration = time.Hour

func placeDraft(ev event.Event, day time.Time, hour int) event.Event {
	start := timegrid.CellToTimestamp(day, hour, 0)
	ev.Date = timegrid.DateOf(start)
	ev.StartTime = util.NewLocalDateTime(start)
	ev.EndTime = util.NewLocalDateTime(start.Add(defaultDuration))
	return ev
}

// DraftForCell seeds a new draft for a click on an empty cell.
func DraftForCell(day time.Time, hour int) event.Event {
	return placeDraft(event.Event{Category: event.CategoryWork}, day, hour)
}

// DraftForTaskDrop seeds a draft from a sidebar task dropped onto the grid.
// The task name becomes the title; the category defaults to work.
func DraftForTaskDrop(t task.Task, day time.Time, hour int) event.Event {
	return placeDraft(event.Event{
		Title:    t.Name,
		Category: event.CategoryWork,
	}, day, hour)
}

// DraftForEventMove rebuilds an existing event at the drop cell, keeping its
// identity and category and giving it the default duration.
func DraftForEventMove(ev event.Event, day time.Time, hour int) event.Event {
	return placeDraft(ev, day, hour)
}
