package models

import "time"

// Message is a contact form submission. It is never updated.
type Message struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	SenderName  string    `gorm:"size:100;not null" json:"senderName"`
	SenderEmail string    `gorm:"size:100;not null" json:"senderEmail"`
	Subject     string    `gorm:"size:255;not null;default:''" json:"subject"`
	Body        string    `gorm:"column:message;type:text;not null" json:"message"`
	SentAt      time.Time `gorm:"autoCreateTime;index" json:"sent_at"`
}
