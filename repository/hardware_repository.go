package repository

import (
	"fmt"
	"sort"

	"github.com/camden-git/hackerdb/models"
	"gorm.io/gorm"
)

// HardwareRepository handles read operations for the Hardware table
type HardwareRepository struct {
	DB *gorm.DB
}

// NewHardwareRepository creates a new instance of HardwareRepository
func NewHardwareRepository(db *gorm.DB) *HardwareRepository {
	return &HardwareRepository{DB: db}
}

// ListAll retrieves all hardware rows in natural order of hardware_name
func (r *HardwareRepository) ListAll() ([]models.Hardware, error) {
	var hardware []models.Hardware
	err := r.DB.Order("hardware_id ASC").Find(&hardware).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hardware: %w", err)
	}
	sort.SliceStable(hardware, func(i, j int) bool {
		return naturalLess(hardware[i].HardwareName, hardware[j].HardwareName)
	})
	return hardware, nil
}
