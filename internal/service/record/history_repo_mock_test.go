package record

import (
	"context"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
	"sync"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc       func(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error)
	ListByClientFunc func(ctx context.Context, clientName string) ([]domain.HistoryEntry, error)
	NextIDFunc       func(ctx context.Context) (int64, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.HistoryEntry
		}
		ListByClient []struct {
			Ctx        context.Context
			ClientName string
		}
		NextID []struct {
			Ctx context.Context
		}
	}
	lockCreate       sync.RWMutex
	lockListByClient sync.RWMutex
	lockNextID       sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error) {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.HistoryEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.HistoryEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *historyRepoMock) NextID(ctx context.Context) (int64, error) {
	if mock.NextIDFunc == nil {
		panic("historyRepoMock.NextIDFunc: method is nil but historyRepo.NextID was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockNextID.Lock()
	mock.calls.NextID = append(mock.calls.NextID, callInfo)
	mock.lockNextID.Unlock()
	return mock.NextIDFunc(ctx)
}

func (mock *historyRepoMock) NextIDCalls() []struct {
	Ctx context.Context
} {
	mock.lockNextID.RLock()
	calls := mock.calls.NextID
	mock.lockNextID.RUnlock()
	return calls
}
