package goal

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	goals, err := h.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if goals == nil {
		goals = []Goal{}
	}
	config.JSON(w, http.StatusOK, goals)
}
