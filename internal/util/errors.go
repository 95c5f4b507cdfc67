package util

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrRegistrationClosed = errors.New("registration is disabled")
	ErrSetupComplete      = errors.New("setup already completed")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrCourseUnavailable  = errors.New("course not available for enrollment")
	ErrNotAQuiz           = errors.New("lesson is not a quiz")
	ErrCannotDeleteSelf   = errors.New("cannot delete your own account")
)

// FieldViolation is one concrete validation failure, addressed precisely
// enough for the UI to highlight the offending field or question.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violation found in a payload instead of
// stopping at the first, so a single round trip surfaces all problems.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, format string, args ...interface{}) {
	e.Violations = append(e.Violations, FieldViolation{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// OrNil returns the error when at least one violation was recorded.
func (e *ValidationError) OrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	e := &ValidationError{}
	e.Add(field, format, args...)
	return e
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsConflict reports whether err maps to HTTP 409.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyEnrolled) ||
		errors.Is(err, ErrEmailRegistered) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrSetupComplete)
}

// IsDuplicateKey reports whether err is a unique index violation. MySQL
// surfaces these as error 1062, which the driver does not always translate
// to gorm.ErrDuplicatedKey.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "Duplicate entry")
}

// IsForbidden reports whether err maps to HTTP 403.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrNotEnrolled) ||
		errors.Is(err, ErrAccountDisabled) ||
		errors.Is(err, ErrRegistrationClosed)
}
