package ports

import (
	"context"

	"github.com/creatorhub/userform-api/internal/core/domain"
)

// SubmitFormInput is the DTO passed from the transport layer to FormService.
// Images holds the stored filenames in the order the files were uploaded.
type SubmitFormInput struct {
	Username    string
	SocialMedia string
	Images      []string
}

// FormService defines use-case operations for form submissions.
type FormService interface {
	Submit(ctx context.Context, input SubmitFormInput) (*domain.FormSubmission, error)
	List(ctx context.Context) ([]*domain.FormSubmission, error)
	Delete(ctx context.Context, id string) error
}
