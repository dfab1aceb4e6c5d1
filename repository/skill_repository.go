package repository

import (
	"errors"
	"fmt"
	"sort"

	"github.com/camden-git/hackerdb/models"
	"github.com/facette/natsort"
	"gorm.io/gorm"
)

// SkillRepository handles read operations for the Skill lookup table
type SkillRepository struct {
	DB *gorm.DB
}

// NewSkillRepository creates a new instance of SkillRepository
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

// ListAll retrieves all skills in natural order of their names
func (r *SkillRepository) ListAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.DB.Order("skill_id ASC").Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	sort.SliceStable(skills, func(i, j int) bool {
		return naturalLess(skills[i].Name, skills[j].Name)
	})
	return skills, nil
}

// GetByName retrieves the first skill whose name matches exactly
func (r *SkillRepository) GetByName(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.DB.Where("skill = ?", name).Order("skill_id ASC").First(&skill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get skill %q: %w", name, err)
	}
	return &skill, nil
}

// naturalLess is a strict ordering over natsort; natsort.Compare alone
// reports true for equal names, which breaks stable sorting.
func naturalLess(a, b string) bool {
	return natsort.Compare(a, b) && !natsort.Compare(b, a)
}
