package ports

import (
	"context"

	"github.com/creatorhub/userform-api/internal/core/domain"
)

// FormRepository defines persistence operations for form submissions.
type FormRepository interface {
	Create(ctx context.Context, form *domain.FormSubmission) error
	// FindAll returns every stored submission, unfiltered.
	FindAll(ctx context.Context) ([]*domain.FormSubmission, error)
	// DeleteByID removes a single submission. Unknown ids (including
	// malformed ones) yield domain.ErrFormNotFound.
	DeleteByID(ctx context.Context, id string) error
}
