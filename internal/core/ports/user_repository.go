package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// UserRepository is the read-only credential store.
type UserRepository interface {
	// FindByEmail matches case-insensitively and returns domain.ErrUserNotFound
	// when no user has that email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
