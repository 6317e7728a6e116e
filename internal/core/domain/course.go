package domain

import "errors"

var ErrCourseNotFound = errors.New("course not found")

// ValidationError is a client input error whose message is returned verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrMissingFields  = &ValidationError{Message: "Missing required fields"}
	ErrInvalidCredits = &ValidationError{Message: "Credits must be a valid number (>= 1)"}
)

// Course is a catalog entry. ID is assigned by the repository and never reused.
type Course struct {
	ID          int64   `json:"id" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Subject     string  `json:"subject" bson:"subject"`
	Credits     float64 `json:"credits" bson:"credits"`
}
