package goal

import "gorm.io/gorm"

type Repository interface {
	Create(g *Goal) error
	FindAll() ([]Goal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(g *Goal) error {
	return r.db.Create(g).Error
}

func (r *repository) FindAll() ([]Goal, error) {
	var goals []Goal
	if err := r.db.Order("name").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
