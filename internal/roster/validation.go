package roster

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// EmailPattern is the accepted shape of a student email address.
const EmailPattern = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`

const emailTag = "roster_email"

var emailRegexp = regexp.MustCompile(EmailPattern)

type studentInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,roster_email"`
}

func registerRules(validate *validator.Validate) error {
	return validate.RegisterValidation(emailTag, func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})
}

// normalizeStudent trims the input and checks it. Name is reported before email.
func (r *Roster) normalizeStudent(name, email string) (string, string, error) {
	in := studentInput{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if err := r.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return "", "", toValidationError(fieldErrs[0])
		}
		return "", "", err
	}
	return in.Name, in.Email, nil
}

func toValidationError(fe validator.FieldError) *ValidationError {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Reason: "is required"}
	case emailTag:
		return &ValidationError{Field: field, Reason: "has an invalid format"}
	default:
		return &ValidationError{Field: field, Reason: "is invalid"}
	}
}
