// Package grid turns calendar state into week-grid geometry and user
// gestures into event drafts. It owns no state; all placement math lives in
// timegrid.
package grid

import (
	"time"

	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/timegrid"
)

// Config describes the rendered grid. The zero value is not useful; use
// DefaultConfig unless the display dictates otherwise.
type Config struct {
	StartHour    int
	VisibleHours int
	PxPerMinute  float64
	RowHeight    float64
	ColumnWidth  float64
}

// DefaultConfig matches the reference display: 7AM to 8PM, 60px hour rows,
// 100px day columns, events drawn at 1.5px per minute.
var DefaultConfig = Config{
	StartHour:    7,
	VisibleHours: 13,
	PxPerMinute:  1.5,
	RowHeight:    60,
	ColumnWidth:  100,
}

// EventBox is one positioned event on the week grid.
type EventBox struct {
	Event  event.Event
	Day    int
	Top    float64
	Left   float64
	Height float64
	Color  string
}

// WeekLayout places every event of the week containing anchor. Events dated
// outside the window are dropped, as are events whose interval cannot be
// rendered.
func WeekLayout(events []event.Event, anchor time.Time, cfg Config) []EventBox {
	week := timegrid.WeekWindow(anchor)

	var boxes []EventBox
	for _, ev := range events {
		day, ok := timegrid.DayBucketOf(ev.Date, week)
		if !ok {
			continue
		}
		height, err := timegrid.DurationToHeight(ev.StartTime.Time, ev.EndTime.Time, cfg.PxPerMinute)
		if err != nil {
			continue
		}
		boxes = append(boxes, EventBox{
			Event:  ev,
			Day:    day,
			Top:    timegrid.TimeToOffset(ev.StartTime.Time, cfg.StartHour, cfg.PxPerMinute),
			Left:   float64(day) * cfg.ColumnWidth,
			Height: height,
			Color:  ev.Category.Color(),
		})
	}
	return boxes
}

// CellAt maps a pointer position inside the grid canvas to a (day, hour)
// cell. One handler with coordinate math replaces a drop target per cell.
func CellAt(x, y float64, cfg Config) (day, hour int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	day = int(x / cfg.ColumnWidth)
	row := int(y / cfg.RowHeight)
	if day > 6 || row >= cfg.VisibleHours {
		return 0, 0, false
	}
	return day, cfg.StartHour + row, true
}
