package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	"github.com/mathalama/review-universities/internal/client/models"
)

// ErrInvalidInput is returned before any network call when a request does
// not pass client-side validation.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

// Guard is the session's view used to gate operations.
type Guard interface {
	RequireUser() (models.User, error)
	RequireAdmin() (models.User, error)
}

func validateStruct(v any) error {
	return describe(validate.Struct(v))
}

func validateVar(field string, v any, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, rule(ve[0]))
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func describe(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, strings.ToLower(fe.Field())+" "+rule(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func rule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid url"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
