package goal

import "time"

// Goal is a user-defined grouping label for tasks. Goals are read-only for
// the calendar UI; they come from the backend as-is.
type Goal struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
