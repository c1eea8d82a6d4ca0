package container

import (
	"context"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/weekplan/weekplan-lambda/internal/calendar"
	"github.com/weekplan/weekplan-lambda/internal/config"
	"github.com/weekplan/weekplan-lambda/internal/event"
	"github.com/weekplan/weekplan-lambda/internal/gateway"
	"github.com/weekplan/weekplan-lambda/internal/goal"
	"github.com/weekplan/weekplan-lambda/internal/task"
)

type Container struct {
	EventContainer *event.Container
	GoalContainer  *goal.Container
	TaskContainer  *task.Container

	Store        *calendar.Store
	Gateway      gateway.Gateway
	Orchestrator *calendar.Orchestrator
}

func New() *Container {
	config.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(&goal.Goal{}, &task.Task{}, &event.Event{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	goalContainer := goal.NewContainer(config.DB)
	taskContainer := task.NewContainer(config.DB)
	eventContainer := event.NewContainer(config.DB)

	seedDemoData(config.DB, goalContainer.Repo, taskContainer.Repo)

	store := calendar.NewStore()
	gw := newGateway()
	orchestrator := calendar.NewOrchestrator(store, gw)

	return &Container{
		EventContainer: eventContainer,
		GoalContainer:  goalContainer,
		TaskContainer:  taskContainer,
		Store:          store,
		Gateway:        gw,
		Orchestrator:   orchestrator,
	}
}

// newGateway picks the data source for the calendar app: the REST client
// when GATEWAY_BASE_URL points at a backend, the fixture gateway otherwise.
func newGateway() gateway.Gateway {
	if baseURL := os.Getenv("GATEWAY_BASE_URL"); baseURL != "" {
		return gateway.NewClient(baseURL)
	}
	return gateway.NewMemory()
}

// seedDemoData loads the demo fixtures into an empty database so a fresh
// deployment serves the same data as the in-memory gateway.
func seedDemoData(db *gorm.DB, goals goal.Repository, tasks task.Repository) {
	var count int64
	if err := db.Model(&goal.Goal{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	for _, g := range gateway.FixtureGoals() {
		if err := goals.Create(&g); err != nil {
			logrus.WithError(err).Warnf("Failed to seed goal %s", g.ID)
		}
	}
	for _, t := range gateway.FixtureTasks() {
		if err := tasks.Create(&t); err != nil {
			logrus.WithError(err).Warnf("Failed to seed task %s", t.ID)
		}
	}
	for _, ev := range gateway.FixtureEvents() {
		if err := db.Create(&ev).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to seed event %s", ev.ID)
		}
	}

	logrus.Info("Seeded demo calendar data")
}
