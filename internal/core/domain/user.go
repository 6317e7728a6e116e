package domain

import "errors"

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// User models a pre-seeded account. Users are never created at runtime.
type User struct {
	ID           int64  `json:"id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	Role         string `json:"role" bson:"role"`
	PasswordHash string `json:"-" bson:"password_hash"`
}

// Identity is what a verified token resolves to.
type Identity struct {
	UserID int64
	Role   string
	Email  string
}

// IsTeacher reports whether the identity may manage the catalog.
func (i Identity) IsTeacher() bool {
	return i.Role == RoleTeacher
}
