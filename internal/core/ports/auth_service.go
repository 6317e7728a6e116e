package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier resolves a bearer token into the identity it was issued for.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}
