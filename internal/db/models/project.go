package models

import "time"

// Project is a portfolio entry. Optional link fields are stored as "" when absent.
type Project struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Technologies string    `gorm:"size:255;not null;default:''" json:"technologies"`
	ImageURL     string    `gorm:"column:image_url;size:255;not null;default:''" json:"imageUrl"`
	LiveLink     string    `gorm:"column:live_link;size:255;not null;default:''" json:"liveLink"`
	GithubLink   string    `gorm:"column:github_link;size:255;not null;default:''" json:"githubLink"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
