// Package timegrid maps calendar timestamps onto a fixed week grid and back.
// All functions are pure; the caller supplies the grid parameters.
package timegrid

import (
	"errors"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

const DateLayout = "2006-01-02"

// TimeToOffset returns the vertical pixel offset of t on a grid whose first
// visible row starts at gridStartHour. Timestamps outside the visible window
// yield offsets outside the canvas; clipping is the caller's concern.
func TimeToOffset(t time.Time, gridStartHour int, pxPerMinute float64) float64 {
	return float64((t.Hour()-gridStartHour)*60+t.Minute()) * pxPerMinute
}

// DurationToHeight returns the rendered height of the [start, end) interval.
func DurationToHeight(start, end time.Time, pxPerMinute float64) (float64, error) {
	if !end.After(start) {
		return 0, ErrInvalidInterval
	}
	return end.Sub(start).Minutes() * pxPerMinute, nil
}

// CellToTimestamp composes the calendar date of day with an hour and minute
// into a local wall-clock timestamp.
func CellToTimestamp(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// WeekWindow returns the 7 dates of the week containing anchor, Sunday first.
// Each entry is normalized to midnight.
func WeekWindow(anchor time.Time) []time.Time {
	start := CellToTimestamp(anchor, 0, 0).AddDate(0, 0, -int(anchor.Weekday()))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DayBucketOf returns the index of the week-window column holding the given
// calendar date, or false when the date falls outside the window. Matching is
// by calendar date, never by full timestamp.
func DayBucketOf(date string, weekDays []time.Time) (int, bool) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	for i, day := range weekDays {
		if SameDay(d, day) {
			return i, true
		}
	}
	return 0, false
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
