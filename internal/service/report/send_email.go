package report

import (
	"context"
	"fmt"
	"strings"
)

// SendEmail delivers a staff-composed message and returns its Message-ID.
func (s *Service) SendEmail(ctx context.Context, input SendEmailInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	id, err := s.mailer.Send(ctx, strings.TrimSpace(input.To), strings.TrimSpace(input.Subject), input.Text)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	return id, nil
}
