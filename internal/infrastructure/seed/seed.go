// Package seed holds the fixed data every store starts with.
package seed

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// DefaultPassword is shared by all seeded accounts.
const DefaultPassword = "Password1!"

// Courses returns the initial catalog. The next assigned id is NextCourseID.
func Courses() []domain.Course {
	return []domain.Course{
		{
			ID:          1,
			Name:        "Web Development",
			Description: "Learn the fundamentals of modern web development.",
			Subject:     "WEB",
			Credits:     3,
		},
		{
			ID:          2,
			Name:        "Intro to Programming",
			Description: "Build core programming foundations and problem-solving skills.",
			Subject:     "CS",
			Credits:     4,
		},
	}
}

const NextCourseID int64 = 3

// Users returns the fixed accounts with bcrypt hashes computed at the given cost.
func Users(cost int) ([]domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return []domain.User{
		{ID: 1, Email: "teacher@test.com", Role: domain.RoleTeacher, PasswordHash: string(hash)},
		{ID: 2, Email: "student@test.com", Role: domain.RoleStudent, PasswordHash: string(hash)},
	}, nil
}
