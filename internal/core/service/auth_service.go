package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/creatorhub/userform-api/internal/core/domain"
	"github.com/creatorhub/userform-api/internal/core/ports"
)

const (
	// bcryptCost matches the work factor the account base was hashed with.
	bcryptCost = 10

	accessTokenTTL  = 7 * 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
	// refreshedAccessTTL is deliberately much shorter than the TTL granted
	// at login; see the /refresh-token contract.
	refreshedAccessTTL = 15 * time.Minute
)

// AuthService implements registration, login, token refresh and identity lookup.
type AuthService struct {
	repo          ports.AuthRepository
	jwtSecret     []byte
	refreshSecret []byte
	adminUsername string
}

func NewAuthService(repo ports.AuthRepository, jwtSecret, refreshSecret, adminUsername string) *AuthService {
	return &AuthService{
		repo:          repo,
		jwtSecret:     []byte(jwtSecret),
		refreshSecret: []byte(refreshSecret),
		adminUsername: adminUsername,
	}
}

// Register creates a new account. The admin role is granted only when the
// username matches the configured admin identifier at creation time.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Check-then-insert is racy under concurrent registration; the unique
	// index on username backstops it at the store level.
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if s.adminUsername != "" && username == s.adminUsername {
		role = domain.RoleAdmin
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies credentials and issues the access/refresh token pair.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.signToken(s.jwtSecret, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	})
	if err != nil {
		return nil, err
	}

	refresh, err := s.signToken(s.refreshSecret, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(refreshTokenTTL).Unix(),
	})
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

// Refresh validates a refresh token and mints a 15-minute access token for
// the same identity. There is no revocation list: a refresh token stays
// usable until its natural expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.refreshSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}

	// Refresh tokens carry no role claim, so the minted access token has
	// an empty role. Protected endpoints only key off user_id.
	role, _ := claims["role"].(string)

	return s.signToken(s.jwtSecret, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(refreshedAccessTTL).Unix(),
	})
}

// GetUser returns the account behind an authenticated identity.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) signToken(secret []byte, claims jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}
