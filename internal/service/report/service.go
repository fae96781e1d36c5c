// Package report renders service-history reports and mails them.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

type clientRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Client, error)
}

type historyRepo interface {
	ListByClient(ctx context.Context, clientName string) ([]domain.HistoryEntry, error)
}

type mailSender interface {
	Send(ctx context.Context, recipient, subject, body string) (string, error)
}

// Settings holds the shop details printed on reports.
type Settings struct {
	ShopName string
	Subject  string
	Location *time.Location
}

// Service builds and delivers reports.
type Service struct {
	clients  clientRepo
	history  historyRepo
	mailer   mailSender
	settings Settings
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a report Service.
func NewService(
	log *slog.Logger,
	clients clientRepo,
	history historyRepo,
	mailer mailSender,
	settings Settings,
) *Service {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &Service{
		clients:  clients,
		history:  history,
		mailer:   mailer,
		settings: settings,
		now:      time.Now,
		log:      log.With("service", "report"),
	}
}
