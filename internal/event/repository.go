package event

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ev *Event) error
	FindAll() ([]Event, error)
	FindByID(id string) (*Event, error)
	Update(ev *Event) error
	Delete(id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ev *Event) error {
	return r.db.Create(ev).Error
}

func (r *repository) FindAll() ([]Event, error) {
	var events []Event
	if err := r.db.Order("start_time").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) FindByID(id string) (*Event, error) {
	var ev Event
	if err := r.db.First(&ev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}

func (r *repository) Update(ev *Event) error {
	return r.db.Save(ev).Error
}

func (r *repository) Delete(id string) error {
	return r.db.Delete(&Event{}, "id = ?", id).Error
}
