package task

import "gorm.io/gorm"

type Repository interface {
	Create(t *Task) error
	FindAll() ([]Task, error)
	FindAllByGoalID(goalID string) ([]Task, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(t *Task) error {
	return r.db.Create(t).Error
}

func (r *repository) FindAll() ([]Task, error) {
	var tasks []Task
	if err := r.db.Order("name").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *repository) FindAllByGoalID(goalID string) ([]Task, error) {
	var tasks []Task
	if err := r.db.Where("goal_id = ?", goalID).Order("name").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
