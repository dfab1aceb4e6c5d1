package models

// Hardware represents an inventory line using GORM.
// It corresponds to the 'Hardware' table.
type Hardware struct {
	ID                uint   `gorm:"column:hardware_id;primaryKey;autoIncrement" json:"hardware_id"`
	HardwareName      string `gorm:"not null" json:"hardware_name"`
	QuantityAvailable int    `gorm:"not null" json:"quantity_available"`
}

// TableName explicitly sets the table name for GORM.
func (Hardware) TableName() string {
	return "Hardware"
}
