package repository

import (
	"fmt"

	"github.com/camden-git/hackerdb/models"
	"gorm.io/gorm"
)

// PersonRepository handles read operations for Person and its PersonSkill links
type PersonRepository struct {
	DB *gorm.DB
}

// NewPersonRepository creates a new instance of PersonRepository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

// ListWithSkills retrieves every person in insertion order, preloading their
// skill links (in insertion order) and the linked Skill rows
func (r *PersonRepository) ListWithSkills() ([]models.Person, error) {
	var people []models.Person
	err := r.DB.
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("rowid ASC")
		}).
		Preload("Skills.Skill").
		Order("person_id ASC").
		Find(&people).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list people with skills: %w", err)
	}
	return people, nil
}

// Count returns the number of Person rows
func (r *PersonRepository) Count() (int64, error) {
	var n int64
	if err := r.DB.Model(&models.Person{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return n, nil
}
