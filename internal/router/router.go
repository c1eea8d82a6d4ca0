package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/weekplan/weekplan-lambda/internal/config"
	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/middlewares"
	"github.com/weekplan/weekplan-lambda/internal/task"
)

type RouterConfig struct {
	EventHandler *event.Handler
	GoalHandler  *goal.Handler
	TaskHandler  *task.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The browser client expects the API under /api, see gateway.DefaultBaseURL.
	r.Route("/api", func(r chi.Router) {
		r.Mount("/events", event.Routes(cfg.EventHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/tasks", task.Routes(cfg.TaskHandler))
	})

	return r
}
