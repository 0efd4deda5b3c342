package domain

import (
	"errors"
	"time"
)

var ErrFormNotFound = errors.New("user form not found")

// FormSubmission is a creator form entry together with the filenames of
// the images uploaded with it. Images keep the order they arrived in.
type FormSubmission struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	SocialMedia string    `json:"socialMedia"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
