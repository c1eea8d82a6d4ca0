package event

import (
	"errors"
	"time"

	util "github.com/weekplan/weekplan-lambda/internal/utils"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidCategory = errors.New("invalid category")
)

// Event is a scheduled, time-boxed calendar entry. An empty ID marks a draft
// that has not been persisted yet; the backend assigns the id on create.
// Date always equals the calendar date of StartTime.
type Event struct {
	ID        string             `gorm:"primaryKey" json:"id"`
	Title     string             `json:"title"`
	Category  Category           `json:"category"`
	Date      string             `json:"date"`
	StartTime util.LocalDateTime `json:"startTime"`
	EndTime   util.LocalDateTime `json:"endTime"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// IsDraft reports whether the event has been persisted.
func (e Event) IsDraft() bool {
	return e.ID == ""
}
