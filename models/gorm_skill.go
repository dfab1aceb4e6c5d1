package models

// Skill is the lookup row for a skill name.
// Names are unique by convention only: the importer looks a name up before
// inserting it, there is no unique index.
type Skill struct {
	ID   uint   `gorm:"column:skill_id;primaryKey;autoIncrement" json:"skill_id"`
	Name string `gorm:"column:skill;not null;index" json:"skill"`
}

// TableName explicitly sets the table name for GORM.
func (Skill) TableName() string {
	return "Skill"
}
