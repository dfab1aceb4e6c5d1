package models

// PersonSkill links a person to a skill with a rating.
// It corresponds to the 'PersonSkill' table and has no primary key of its own.
type PersonSkill struct {
	PersonID uint `gorm:"not null;index" json:"-"`
	SkillID  uint `gorm:"not null;index" json:"-"`
	Rating   int  `gorm:"not null" json:"rating"`

	Skill *Skill `gorm:"foreignKey:SkillID;references:ID" json:"-"` // Belongs to Skill
}

// TableName explicitly sets the table name for GORM.
func (PersonSkill) TableName() string {
	return "PersonSkill"
}
