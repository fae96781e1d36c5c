package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// EmailReport renders the report of clientName and mails it to to, or to
// the client's own address when to is empty. Returns the Message-ID.
func (s *Service) EmailReport(ctx context.Context, clientName, to string) (string, error) {
	clientName = strings.TrimSpace(clientName)

	client, err := s.clients.GetByName(ctx, clientName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("client %q: %w", clientName, domain.ErrClientNotFound)
		}
		return "", fmt.Errorf("get client: %w", err)
	}

	to = strings.TrimSpace(to)
	if to == "" {
		to = client.Email
	}
	if errs := validateAddress(nil, "toEmail", to); len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}

	entries, err := s.history.ListByClient(ctx, clientName)
	if err != nil {
		return "", fmt.Errorf("list history: %w", err)
	}

	subject := s.settings.Subject + " - " + client.Name
	id, err := s.mailer.Send(ctx, to, subject, s.render(*client, entries))
	if err != nil {
		return "", fmt.Errorf("email report: %w", err)
	}

	s.log.InfoContext(ctx, "report emailed",
		slog.String("client", client.Name),
		slog.Int("entries", len(entries)),
		slog.String("message_id", id),
	)
	return id, nil
}
