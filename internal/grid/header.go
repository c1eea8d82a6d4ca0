package grid

import (
	"fmt"
	"time"

	"github.com/weekplan/weekplan-lambda/internal/calendar"
	"github.com/weekplan/weekplan-lambda/internal/timegrid"
)

// StepDate moves the anchor date n steps in the unit of the current view.
// Negative n navigates backwards.
func StepDate(view calendar.View, date time.Time, n int) time.Time {
	switch view {
	case calendar.ViewDay:
		return date.AddDate(0, 0, n)
	case calendar.ViewMonth:
		return date.AddDate(0, n, 0)
	case calendar.ViewYear:
		return date.AddDate(n, 0, 0)
	default:
		return date.AddDate(0, 0, 7*n)
	}
}

// HeaderTitle formats the calendar header for the current view and anchor.
func HeaderTitle(view calendar.View, date time.Time) string {
	switch view {
	case calendar.ViewDay:
		return date.Format("January 2, 2006")
	case calendar.ViewMonth:
		return date.Format("January 2006")
	case calendar.ViewYear:
		return date.Format("2006")
	default:
		week := timegrid.WeekWindow(date)
		return fmt.Sprintf("%s - %s", week[0].Format("Jan 2"), week[6].Format("Jan 2, 2006"))
	}
}
