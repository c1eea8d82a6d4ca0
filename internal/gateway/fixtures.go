package gateway

import (
	"time"

	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
	util "github.com/weekplan/weekplan-lambda/internal/utils"
)

func at(y int, m time.Month, d, hh, mm int) util.LocalDateTime {
	return util.NewLocalDateTime(time.Date(y, m, d, hh, mm, 0, 0, time.Local))
}

// FixtureEvents is the demo week the memory gateway serves and the database
// seeder inserts into an empty store.
func FixtureEvents() []event.Event {
	return []event.Event{
		{
			ID:        "1",
			Title:     "Monday Wake-Up",
			Category:  event.CategoryExercise,
			Date:      "2025-04-08",
			StartTime: at(2025, time.April, 8, 8, 0),
			EndTime:   at(2025, time.April, 8, 8, 30),
		},
		{
			ID:        "2",
			Title:     "All-Team Kickoff",
			Category:  event.CategoryWork,
			Date:      "2025-04-08",
			StartTime: at(2025, time.April, 8, 9, 0),
			EndTime:   at(2025, time.April, 8, 9, 45),
		},
		{
			ID:        "3",
			Title:     "Financial Update",
			Category:  event.CategoryWork,
			Date:      "2025-04-08",
			StartTime: at(2025, time.April, 8, 10, 0),
			EndTime:   at(2025, time.April, 8, 10, 30),
		},
		{
			ID:        "4",
			Title:     "Design System Kickoff Lunch",
			Category:  event.CategoryWork,
			Date:      "2025-04-10",
			StartTime: at(2025, time.April, 10, 12, 0),
			EndTime:   at(2025, time.April, 10, 13, 0),
		},
		{
			ID:        "5",
			Title:     "Design Review",
			Category:  event.CategoryWork,
			Date:      "2025-04-08",
			StartTime: at(2025, time.April, 8, 13, 0),
			EndTime:   at(2025, time.April, 8, 14, 0),
		},
	}
}

func FixtureGoals() []goal.Goal {
	return []goal.Goal{
		{ID: "1", Name: "Be fit", Color: "#FF9F33"},
		{ID: "2", Name: "Academics", Color: "#9F33FF"},
		{ID: "3", Name: "LEARN", Color: "#33A3FF"},
		{ID: "4", Name: "Sports", Color: "#33FFB5"},
	}
}

func FixtureTasks() []task.Task {
	return []task.Task{
		{ID: "1", Name: "AI based agents", GoalID: "3"},
		{ID: "2", Name: "MLE", GoalID: "3"},
		{ID: "3", Name: "DE related", GoalID: "3"},
		{ID: "4", Name: "Basics", GoalID: "3"},
	}
}
