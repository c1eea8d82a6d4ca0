package event

import (
	util "github.com/weekplan/weekplan-lambda/internal/utils"
)

// CreateEventDTO carries every event field except the id, which the backend
// assigns. Date is not accepted as input; it is derived from StartTime.
type CreateEventDTO struct {
	Title     string             `json:"title"`
	Category  Category           `json:"category"`
	StartTime util.LocalDateTime `json:"startTime"`
	EndTime   util.LocalDateTime `json:"endTime"`
}

type UpdateEventDTO struct {
	Title     *string             `json:"title"`
	Category  *Category           `json:"category"`
	StartTime *util.LocalDateTime `json:"startTime"`
	EndTime   *util.LocalDateTime `json:"endTime"`
}
