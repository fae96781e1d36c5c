package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// ListClients returns every client in store order.
func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// EnsureClient creates the client if no client with that name exists.
// An existing client is left untouched, whatever attributes are passed.
func (s *Service) EnsureClient(ctx context.Context, input EnsureClientInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	return s.ensureClient(ctx, domain.Client{
		Name:             strings.TrimSpace(input.Name),
		Machine:          strings.TrimSpace(input.Machine),
		RegistrationDate: input.RegistrationDate,
		Email:            strings.TrimSpace(input.Email),
	})
}

func (s *Service) ensureClient(ctx context.Context, c domain.Client) error {
	_, err := s.clients.GetByName(ctx, c.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get client: %w", err)
	}

	err = s.clients.Create(ctx, c)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "client created", slog.String("client", c.Name))
		return nil
	case errors.Is(err, domain.ErrAlreadyExists):
		// Lost a race with a concurrent intake for the same name.
		return nil
	default:
		return fmt.Errorf("create client: %w", err)
	}
}
