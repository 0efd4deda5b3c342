package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/creatorhub/userform-api/internal/core/domain"
	"github.com/creatorhub/userform-api/internal/core/ports"
)

// FormService implements the form submission use cases. The listing cache
// is optional; a nil cache means every List hits the store.
type FormService struct {
	repo  ports.FormRepository
	cache ports.ListingCache
	log   zerolog.Logger
}

func NewFormService(repo ports.FormRepository, cache ports.ListingCache, log zerolog.Logger) *FormService {
	return &FormService{repo: repo, cache: cache, log: log}
}

// Submit persists a new form submission. The images slice holds the stored
// filenames in upload order; its length always equals the number of files
// accepted by the upload handler.
func (s *FormService) Submit(ctx context.Context, input ports.SubmitFormInput) (*domain.FormSubmission, error) {
	now := time.Now().UTC()
	form := &domain.FormSubmission{
		Username:    input.Username,
		SocialMedia: input.SocialMedia,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, form); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	return form, nil
}

// List returns every stored submission, preferring the cache when warm.
func (s *FormService) List(ctx context.Context) ([]*domain.FormSubmission, error) {
	if s.cache != nil {
		forms, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("listing cache read failed")
		} else if forms != nil {
			return forms, nil
		}
	}

	forms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, forms); err != nil {
			s.log.Warn().Err(err).Msg("listing cache write failed")
		}
	}
	return forms, nil
}

// Delete removes a submission by id. Files referenced by the submission
// stay on disk; there is no cascading deletion.
func (s *FormService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *FormService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}
