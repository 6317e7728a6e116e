package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
	"github.com/coursehub/catalog-api/internal/pkg/metrics"
)

// TokenIssuer signs a credential for an authenticated user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// AuthService implements login against the fixed credential store.
type AuthService struct {
	repo   ports.UserRepository
	tokens TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login checks the password and returns a signed token. Unknown emails and
// wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.fail(email, "unknown email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.fail(email, "wrong password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) fail(email, reason string) {
	metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
	s.logger.Warn().Str("email", email).Str("reason", reason).Msg("login rejected")
}
