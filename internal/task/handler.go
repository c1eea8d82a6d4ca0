package task

import (
	"net/http"

	"github.com/weekplan/weekplan-lambda/internal/config"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List returns every task, or only the tasks of one goal when the goalId
// query parameter is present.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var (
		tasks []Task
		err   error
	)
	if goalID := r.URL.Query().Get("goalId"); goalID != "" {
		tasks, err = h.repo.FindAllByGoalID(goalID)
	} else {
		tasks, err = h.repo.FindAll()
	}
	if err != nil {
		log.WithError(err).Error("Failed to list tasks")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if tasks == nil {
		tasks = []Task{}
	}
	config.JSON(w, http.StatusOK, tasks)
}
