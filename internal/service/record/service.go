// Package record implements client and service-history bookkeeping.
package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

type clientRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, c domain.Client) error
}

type historyRepo interface {
	Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error)
	ListByClient(ctx context.Context, clientName string) ([]domain.HistoryEntry, error)
	NextID(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns clients and their service history. It holds no state of its
// own between calls; every read goes to the store.
type Service struct {
	clients clientRepo
	history historyRepo
	tx      txManager
	loc     *time.Location
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a record Service. loc is the shop's time zone, used to
// decide which calendar day "today" is when deriving a job's status.
func NewService(
	log *slog.Logger,
	clients clientRepo,
	history historyRepo,
	tx txManager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		clients: clients,
		history: history,
		tx:      tx,
		loc:     loc,
		now:     time.Now,
		log:     log.With("service", "record"),
	}
}

// today returns the current instant in the shop's time zone.
func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}
