package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// GetHistory returns the entries of a client in store order. An unknown
// client has an empty history.
func (s *Service) GetHistory(ctx context.Context, clientName string) ([]domain.HistoryEntry, error) {
	entries, err := s.history.ListByClient(ctx, strings.TrimSpace(clientName))
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// AddClientWithHistory records a first visit: it creates the client when the
// name is new (never overwriting an existing one) and appends one history
// entry. Both writes share a transaction.
func (s *Service) AddClientWithHistory(ctx context.Context, input AddClientWithHistoryInput) (*domain.HistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := mustParseDate(input.Date)
	client := domain.Client{
		Name:             strings.TrimSpace(input.Name),
		Machine:          strings.TrimSpace(input.Machine),
		RegistrationDate: date,
		Email:            strings.TrimSpace(input.Email),
	}
	entry := s.newEntry(domain.HistoryEntry{
		ClientName:    client.Name,
		Machine:       client.Machine,
		WorkDate:      date,
		Description:   strings.TrimSpace(input.Description),
		MaterialState: strings.TrimSpace(input.MaterialState),
		Phone:         strings.TrimSpace(input.Phone),
		Technician:    strings.TrimSpace(input.Technician),
		SerialNumber:  strings.TrimSpace(input.SerialNumber),
		EndDate:       parseOptionalDate(input.EndDate),
		Email:         client.Email,
	})

	var created *domain.HistoryEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureClient(txCtx, client); err != nil {
			return err
		}
		var err error
		created, err = s.history.Create(txCtx, entry)
		if err != nil {
			return fmt.Errorf("create history entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "history entry added",
		slog.String("client", created.ClientName),
		slog.Int64("id", created.ID),
		slog.String("status", created.Status.String()),
	)
	return created, nil
}

// AddHistoryForExistingClient appends a history entry for a client that
// must already exist. An unknown client yields domain.ErrClientNotFound and
// nothing is written.
func (s *Service) AddHistoryForExistingClient(ctx context.Context, input AddHistoryInput) (*domain.HistoryEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.ClientName)
	if _, err := s.clients.GetByName(ctx, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("client %q: %w", name, domain.ErrClientNotFound)
		}
		return nil, fmt.Errorf("get client: %w", err)
	}

	entry := s.newEntry(domain.HistoryEntry{
		ClientName:    name,
		Machine:       strings.TrimSpace(input.Machine),
		WorkDate:      mustParseDate(input.WorkDate),
		Description:   strings.TrimSpace(input.Description),
		MaterialState: strings.TrimSpace(input.MaterialState),
		Phone:         strings.TrimSpace(input.Phone),
		Technician:    strings.TrimSpace(input.Technician),
		SerialNumber:  strings.TrimSpace(input.SerialNumber),
		EndDate:       parseOptionalDate(input.EndDate),
		Email:         strings.TrimSpace(input.Email),
	})

	created, err := s.history.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create history entry: %w", err)
	}

	s.log.InfoContext(ctx, "history entry added",
		slog.String("client", created.ClientName),
		slog.Int64("id", created.ID),
		slog.String("status", created.Status.String()),
	)
	return created, nil
}

// newEntry stamps the derived status on e.
func (s *Service) newEntry(e domain.HistoryEntry) domain.HistoryEntry {
	e.Status = domain.DeriveStatus(e.EndDate, s.today())
	return e
}
