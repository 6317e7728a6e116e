package memory

import (
	"context"
	"strings"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// UserRepository is an immutable credential store keyed by lower-cased email.
type UserRepository struct {
	byEmail map[string]domain.User
}

// NewUserRepository indexes users by email. A later duplicate email replaces
// an earlier one.
func NewUserRepository(users []domain.User) *UserRepository {
	byEmail := make(map[string]domain.User, len(users))
	for _, u := range users {
		byEmail[normalizeEmail(u.Email)] = u
	}
	return &UserRepository{byEmail: byEmail}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
