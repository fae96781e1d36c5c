package record

import (
	"strings"
	"time"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

const dateFormatMessage = "must be a date (YYYY-MM-DD)"

// EnsureClientInput holds the attributes of a client to create if absent.
type EnsureClientInput struct {
	Name             string
	Machine          string
	RegistrationDate time.Time
	Email            string
}

// Validate checks all fields and collects all errors.
func (i EnsureClientInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddClientWithHistoryInput is a first-visit intake: the client attributes
// plus the first history entry. Date is both the registration date and the
// work date. Dates are YYYY-MM-DD strings as received from the form.
type AddClientWithHistoryInput struct {
	Name          string
	Machine       string
	Date          string
	Email         string
	Description   string
	MaterialState string
	Phone         string
	Technician    string
	SerialNumber  string
	EndDate       string
}

// Validate checks all fields and collects all errors.
func (i AddClientWithHistoryInput) Validate() error {
	var errs []domain.FieldError

	errs = required(errs, "name", i.Name)
	errs = required(errs, "machine", i.Machine)
	errs = requiredDate(errs, "date", i.Date)
	errs = required(errs, "email", i.Email)
	errs = optionalDate(errs, "endDate", i.EndDate)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddHistoryInput is a repeat visit for a client that must already exist.
type AddHistoryInput struct {
	ClientName    string
	Machine       string
	WorkDate      string
	Description   string
	MaterialState string
	Phone         string
	Technician    string
	SerialNumber  string
	EndDate       string
	Email         string
}

// Validate checks all fields and collects all errors.
func (i AddHistoryInput) Validate() error {
	var errs []domain.FieldError

	errs = required(errs, "clientName", i.ClientName)
	errs = required(errs, "machine", i.Machine)
	errs = requiredDate(errs, "workDate", i.WorkDate)
	errs = required(errs, "phone", i.Phone)
	errs = required(errs, "technician", i.Technician)
	errs = required(errs, "email", i.Email)
	errs = optionalDate(errs, "endDate", i.EndDate)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func required(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func requiredDate(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if _, err := domain.ParseDate(value); err != nil {
		return append(errs, domain.FieldError{Field: field, Message: dateFormatMessage})
	}
	return errs
}

func optionalDate(errs []domain.FieldError, field, value string) []domain.FieldError {
	if strings.TrimSpace(value) == "" {
		return errs
	}
	if _, err := domain.ParseDate(value); err != nil {
		return append(errs, domain.FieldError{Field: field, Message: dateFormatMessage})
	}
	return errs
}

// parseOptionalDate returns nil for a blank value. Only call after Validate.
func parseOptionalDate(value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := domain.ParseDate(value)
	if err != nil {
		return nil
	}
	return &t
}

// mustParseDate parses a date already checked by Validate.
func mustParseDate(value string) time.Time {
	t, _ := domain.ParseDate(value)
	return t
}
