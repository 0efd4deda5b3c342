package ports

import (
	"context"

	"github.com/creatorhub/userform-api/internal/core/domain"
)

// ListingCache caches the full submission listing between reads.
// Get returns (nil, nil) on a miss.
type ListingCache interface {
	Get(ctx context.Context) ([]*domain.FormSubmission, error)
	Set(ctx context.Context, forms []*domain.FormSubmission) error
	Invalidate(ctx context.Context) error
}
