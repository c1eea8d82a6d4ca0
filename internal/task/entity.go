package task

import (
	"time"

	"github.com/weekplan/weekplan-lambda/internal/goal"
)

// Task is an unscheduled to-do belonging to a goal. Dropping a task onto the
// week grid seeds a draft calendar event titled after it.
type Task struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	GoalID    string    `gorm:"column:goal_id;not null" json:"goalId"`
	Goal      goal.Goal `gorm:"foreignKey:GoalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
