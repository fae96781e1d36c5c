package report

import (
	"context"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
	"sync"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	ListByClientFunc func(ctx context.Context, clientName string) ([]domain.HistoryEntry, error)

	calls struct {
		ListByClient []struct {
			Ctx        context.Context
			ClientName string
		}
	}
	lockListByClient sync.RWMutex
}

func (mock *historyRepoMock) ListByClient(ctx context.Context, clientName string) ([]domain.HistoryEntry, error) {
	if mock.ListByClientFunc == nil {
		panic("historyRepoMock.ListByClientFunc: method is nil but historyRepo.ListByClient was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ClientName string
	}{Ctx: ctx, ClientName: clientName}
	mock.lockListByClient.Lock()
	mock.calls.ListByClient = append(mock.calls.ListByClient, callInfo)
	mock.lockListByClient.Unlock()
	return mock.ListByClientFunc(ctx, clientName)
}

func (mock *historyRepoMock) ListByClientCalls() []struct {
	Ctx        context.Context
	ClientName string
} {
	mock.lockListByClient.RLock()
	calls := mock.calls.ListByClient
	mock.lockListByClient.RUnlock()
	return calls
}
