package report

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// SendEmailInput is a free-form message composed by staff.
type SendEmailInput struct {
	To      string
	Subject string
	Text    string
}

// Validate checks all fields and collects all errors.
func (i SendEmailInput) Validate() error {
	var errs []domain.FieldError

	errs = validateAddress(errs, "toEmail", i.To)
	if strings.TrimSpace(i.Subject) == "" {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "required"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateAddress(errs []domain.FieldError, field, value string) []domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return append(errs, domain.FieldError{Field: field, Message: "invalid email address"})
	}
	return errs
}
