package service

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
)

// courseFields is the trimmed, validated shape of a course payload.
type courseFields struct {
	Name        string   `validate:"required"`
	Description string   `validate:"required"`
	Subject     string   `validate:"required"`
	Credits     *float64 `validate:"required,finite,gte=1"`
}

func newCourseValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := reflect.Indirect(fl.Field())
		if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
			return false
		}
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})
	return v
}

// validateCourse trims the input and checks it. Missing fields are reported
// before bad credits.
func validateCourse(v *validator.Validate, in ports.CourseInput) (courseFields, error) {
	fields := courseFields{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Subject:     strings.TrimSpace(in.Subject),
		Credits:     in.Credits,
	}

	err := v.Struct(fields)
	if err == nil {
		return fields, nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fields, err
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return fields, domain.ErrMissingFields
		}
	}
	return fields, domain.ErrInvalidCredits
}
