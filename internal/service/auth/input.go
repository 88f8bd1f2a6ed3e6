package auth

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/knowtes-backend/internal/domain"
	"github.com/heartmarshall/knowtes-backend/internal/validate"
)

// Password must mix lower and upper case letters, a digit and one of @$!%*?&.
var passwordClasses = []*regexp.Regexp{
	regexp.MustCompile(`[a-z]`),
	regexp.MustCompile(`[A-Z]`),
	regexp.MustCompile(`\d`),
	regexp.MustCompile(`[@$!%*?&]`),
}

// bcrypt rejects passwords longer than 72 bytes; validator's max counts runes.
const maxPasswordBytes = 72

const passwordComplexityMessage = "must contain an uppercase letter, a lowercase letter, a digit and a special character (@$!%*?&)"

// RegisterInput holds parameters for email + password registration.
type RegisterInput struct {
	Email                string `json:"email" validate:"required,email,max=254"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

func (i RegisterInput) normalize() RegisterInput {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	return i
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	n := i.normalize()
	var extra []domain.FieldError
	if n.Password != "" && !passwordComplex(n.Password) {
		extra = append(extra, domain.FieldError{Field: "password", Message: passwordComplexityMessage})
	}
	if fe, ok := passwordBytesError(n.Password); ok {
		extra = append(extra, fe)
	}
	return validate.Merge(validate.Struct(n), extra...)
}

func passwordBytesError(p string) (domain.FieldError, bool) {
	if len(p) <= maxPasswordBytes {
		return domain.FieldError{}, false
	}
	return domain.FieldError{Field: "password", Message: "must be at most 72 bytes"}, true
}

func passwordComplex(p string) bool {
	for _, re := range passwordClasses {
		if !re.MatchString(p) {
			return false
		}
	}
	return true
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

func (i LoginInput) normalize() LoginInput {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	return i
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	n := i.normalize()
	var extra []domain.FieldError
	if fe, ok := passwordBytesError(n.Password); ok {
		extra = append(extra, fe)
	}
	return validate.Merge(validate.Struct(n), extra...)
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required,max=512"`
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	return validate.Struct(i)
}
