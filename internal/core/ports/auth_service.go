package ports

import (
	"context"

	"github.com/creatorhub/userform-api/internal/core/domain"
)

// LoginResult carries both tokens and the authenticated user back to the
// transport layer.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// Refresh exchanges a valid refresh token for a short-lived access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
