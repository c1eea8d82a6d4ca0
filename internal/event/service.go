package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/weekplan/weekplan-lambda/internal/config"
	"github.com/weekplan/weekplan-lambda/internal/timegrid"
)

type Service interface {
	Create(ctx context.Context, dto CreateEventDTO) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, id string, dto UpdateEventDTO) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validate(ev *Event) error {
	if ev.Title == "" {
		return ErrTitleRequired
	}
	if !ev.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !ev.EndTime.After(ev.StartTime.Time) {
		return timegrid.ErrInvalidInterval
	}
	// Date is never accepted from the client; it always tracks StartTime.
	ev.Date = timegrid.DateOf(ev.StartTime.Time)
	return nil
}

func (s *service) Create(ctx context.Context, dto CreateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)

	ev := Event{
		ID:        uuid.NewString(),
		Title:     dto.Title,
		Category:  dto.Category,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := validate(&ev); err != nil {
		log.WithError(err).Warn("Rejected invalid event")
		return nil, err
	}

	if err := s.repo.Create(&ev); err != nil {
		log.WithError(err).Error("Failed to create event")
		return nil, err
	}

	log.WithField("event_id", ev.ID).Info("Event created successfully")
	return &ev, nil
}

func (s *service) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list events")
		return nil, err
	}
	return events, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateEventDTO) (*Event, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Warn("Event not found for update")
		return nil, err
	}

	if dto.Title != nil {
		existing.Title = *dto.Title
	}
	if dto.Category != nil {
		existing.Category = *dto.Category
	}
	if dto.StartTime != nil {
		existing.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		existing.EndTime = *dto.EndTime
	}
	existing.UpdatedAt = time.Now()

	if err := validate(existing); err != nil {
		log.WithError(err).Warn("Rejected invalid event update")
		return nil, err
	}

	if err := s.repo.Update(existing); err != nil {
		log.WithError(err).Error("Failed to update event")
		return nil, err
	}

	log.WithField("event_id", existing.ID).Info("Event updated successfully")
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		log.WithError(err).Warn("Event not found for deletion")
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete event")
		return err
	}

	log.WithField("event_id", id).Info("Event deleted successfully")
	return nil
}
