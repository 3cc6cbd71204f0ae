// Package message stores contact form submissions.
package message

import (
	"context"

	"gorm.io/gorm"

	"github.com/showcase-apps/showcase/internal/db/controller"
	"github.com/showcase-apps/showcase/internal/db/models"
	"github.com/showcase-apps/showcase/internal/db/patch"
)

// ErrMessageNotFound is returned when no message has the requested id.
var ErrMessageNotFound = patch.NotFound("Message")

// Table holds the rules applied to submitted messages.
var Table = &patch.Table{ //nolint:gochecknoglobals
	Name: "messages",
	Rules: []patch.Rule{
		{Column: "sender_name", Label: "Name", Required: true, MaxLen: 100},
		{Column: "sender_email", Label: "Email", Required: true, MaxLen: 100},
		{Column: "subject", Label: "Subject", MaxLen: 255},
		{Column: "message", Label: "Message", Required: true},
	},
}

// CreateInput is a contact form submission.
type CreateInput struct {
	SenderName  string `json:"senderName" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"required"`
	Subject     string `json:"subject"`
	Message     string `json:"message" validate:"required"`
}

// List returns all messages, newest first.
func List(ctx context.Context, db *gorm.DB) ([]models.Message, error) {
	return controller.Find[models.Message](ctx, db, "sent_at DESC, id DESC")
}

// Get returns the message with id.
func Get(ctx context.Context, db *gorm.DB, id uint64) (*models.Message, error) {
	return controller.First[models.Message](ctx, db, id, ErrMessageNotFound)
}

// Create validates and stores a message.
func Create(ctx context.Context, db *gorm.DB, in CreateInput) (*models.Message, error) {
	if db == nil {
		return nil, patch.ErrDBNil
	}

	var m models.Message

	for _, f := range []struct {
		column string
		value  string
		dst    *string
	}{
		{"sender_name", in.SenderName, &m.SenderName},
		{"sender_email", in.SenderEmail, &m.SenderEmail},
		{"subject", in.Subject, &m.Subject},
		{"message", in.Message, &m.Body},
	} {
		v, err := Table.Check(f.column, f.value)
		if err != nil {
			return nil, err
		}

		*f.dst = v
	}

	if err := db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &m, nil
}

// Delete removes the message with id.
func Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	return controller.Delete[models.Message](ctx, db, id, ErrMessageNotFound)
}
