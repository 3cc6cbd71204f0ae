package models

import "time"

// TodoDescriptionMaxLen is the longest description a todo accepts, in characters.
const TodoDescriptionMaxLen = 25

// Todo is a to-do list item.
type Todo struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:25;not null" json:"description"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
