package models

// Person represents an imported person using GORM.
// It corresponds to the 'Person' table.
type Person struct {
	ID      uint   `gorm:"column:person_id;primaryKey;autoIncrement" json:"person_id"`
	Name    string `gorm:"not null" json:"name"`
	Company string `gorm:"not null" json:"company"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`

	// Relationships
	Skills []PersonSkill `gorm:"foreignKey:PersonID;references:ID" json:"skills"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "Person"
}
