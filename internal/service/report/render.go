package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

const emptyValue = "-"

// Render returns the plain-text service-history report of a client. The
// status of every entry is derived again for the current day rather than
// read back from the store. An unknown client gets a report with no entries.
func (s *Service) Render(ctx context.Context, clientName string) (string, error) {
	clientName = strings.TrimSpace(clientName)

	client, err := s.clients.GetByName(ctx, clientName)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("get client: %w", err)
	}
	if client == nil {
		client = &domain.Client{Name: clientName}
	}

	entries, err := s.history.ListByClient(ctx, clientName)
	if err != nil {
		return "", fmt.Errorf("list history: %w", err)
	}

	return s.render(*client, entries), nil
}

func (s *Service) render(client domain.Client, entries []domain.HistoryEntry) string {
	today := s.now().In(s.settings.Location)

	var b strings.Builder
	if s.settings.ShopName != "" {
		fmt.Fprintln(&b, s.settings.ShopName)
	}
	fmt.Fprintln(&b, s.settings.Subject)
	fmt.Fprintln(&b, strings.Repeat("=", len([]rune(s.settings.Subject))))
	fmt.Fprintf(&b, "Client      : %s\n", client.Name)
	if client.Email != "" {
		fmt.Fprintf(&b, "Email       : %s\n", client.Email)
	}
	fmt.Fprintf(&b, "Edité le    : %s\n", today.Format(domain.DateLayout))

	if len(entries) == 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Aucune intervention enregistrée.")
		return b.String()
	}

	for _, e := range entries {
		status := domain.DeriveStatus(e.EndDate, today)

		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "Ordre de réparation n° %d\n", e.ID)
		line(&b, "Machine", e.Machine)
		line(&b, "Date", domain.FormatDate(e.WorkDate))
		line(&b, "Date de fin", optionalDate(e))
		line(&b, "Statut", statusLabel(status))
		line(&b, "Technicien", e.Technician)
		line(&b, "Téléphone", e.Phone)
		line(&b, "N° de série", e.SerialNumber)
		line(&b, "Etat", e.MaterialState)
		line(&b, "Description", e.Description)
	}

	return b.String()
}

func line(b *strings.Builder, label, value string) {
	if value == "" {
		value = emptyValue
	}
	fmt.Fprintf(b, "  %-12s: %s\n", label, value)
}

func optionalDate(e domain.HistoryEntry) string {
	if e.EndDate == nil {
		return ""
	}
	return domain.FormatDate(*e.EndDate)
}

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusCompleted:
		return "Terminé"
	case domain.StatusInProgress:
		return "En cours"
	default:
		return string(s)
	}
}
