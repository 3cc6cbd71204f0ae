package models

import "time"

// Proficiency grades a skill.
type Proficiency string

// Accepted proficiency levels.
const (
	Beginner     Proficiency = "Beginner"
	Intermediate Proficiency = "Intermediate"
	Advanced     Proficiency = "Advanced"
	Expert       Proficiency = "Expert"
)

// Proficiencies lists every accepted level, lowest first.
var Proficiencies = []string{ //nolint:gochecknoglobals
	string(Beginner),
	string(Intermediate),
	string(Advanced),
	string(Expert),
}

// Skill is a named skill with a proficiency. Names are unique ignoring case.
type Skill struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Proficiency Proficiency `gorm:"size:50;not null" json:"proficiency"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
