package repository

import (
	"github.com/camden-git/hackerdb/models"
)

// PersonRepositoryInterface defines the read operations used by the users endpoint
type PersonRepositoryInterface interface {
	ListWithSkills() ([]models.Person, error)
	Count() (int64, error)
}

// SkillRepositoryInterface defines the methods for skill lookups
type SkillRepositoryInterface interface {
	ListAll() ([]models.Skill, error)
	GetByName(name string) (*models.Skill, error)
}

// HardwareRepositoryInterface defines the methods for hardware inventory reads
type HardwareRepositoryInterface interface {
	ListAll() ([]models.Hardware, error)
}
