package rest

import (
	"context"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
	"github.com/heartmarshall/repairshop-backend/internal/service/record"
	"sync"
)

var _ recordService = &recordServiceMock{}

type recordServiceMock struct {
	AddClientWithHistoryFunc        func(ctx context.Context, input record.AddClientWithHistoryInput) (*domain.HistoryEntry, error)
	AddHistoryForExistingClientFunc func(ctx context.Context, input record.AddHistoryInput) (*domain.HistoryEntry, error)
	GetHistoryFunc                  func(ctx context.Context, clientName string) ([]domain.HistoryEntry, error)
	ListClientsFunc                 func(ctx context.Context) ([]domain.Client, error)
	NextRepairOrderNumberFunc       func(ctx context.Context) (int64, error)

	calls struct {
		AddClientWithHistory []struct {
			Ctx   context.Context
			Input record.AddClientWithHistoryInput
		}
		AddHistoryForExistingClient []struct {
			Ctx   context.Context
			Input record.AddHistoryInput
		}
		GetHistory []struct {
			Ctx        context.Context
			ClientName string
		}
		ListClients []struct {
			Ctx context.Context
		}
		NextRepairOrderNumber []struct {
			Ctx context.Context
		}
	}
	lockAddClientWithHistory        sync.RWMutex
	lockAddHistoryForExistingClient sync.RWMutex
	lockGetHistory                  sync.RWMutex
	lockListClients                 sync.RWMutex
	lockNextRepairOrderNumber       sync.RWMutex
}

func (mock *recordServiceMock) AddClientWithHistory(ctx context.Context, input record.AddClientWithHistoryInput) (*domain.HistoryEntry, error) {
	if mock.AddClientWithHistoryFunc == nil {
		panic("recordServiceMock.AddClientWithHistoryFunc: method is nil but recordService.AddClientWithHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input record.AddClientWithHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockAddClientWithHistory.Lock()
	mock.calls.AddClientWithHistory = append(mock.calls.AddClientWithHistory, callInfo)
	mock.lockAddClientWithHistory.Unlock()
	return mock.AddClientWithHistoryFunc(ctx, input)
}

func (mock *recordServiceMock) AddClientWithHistoryCalls() []struct {
	Ctx   context.Context
	Input record.AddClientWithHistoryInput
} {
	mock.lockAddClientWithHistory.RLock()
	calls := mock.calls.AddClientWithHistory
	mock.lockAddClientWithHistory.RUnlock()
	return calls
}

func (mock *recordServiceMock) AddHistoryForExistingClient(ctx context.Context, input record.AddHistoryInput) (*domain.HistoryEntry, error) {
	if mock.AddHistoryForExistingClientFunc == nil {
		panic("recordServiceMock.AddHistoryForExistingClientFunc: method is nil but recordService.AddHistoryForExistingClient was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input record.AddHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockAddHistoryForExistingClient.Lock()
	mock.calls.AddHistoryForExistingClient = append(mock.calls.AddHistoryForExistingClient, callInfo)
	mock.lockAddHistoryForExistingClient.Unlock()
	return mock.AddHistoryForExistingClientFunc(ctx, input)
}

func (mock *recordServiceMock) AddHistoryForExistingClientCalls() []struct {
	Ctx   context.Context
	Input record.AddHistoryInput
} {
	mock.lockAddHistoryForExistingClient.RLock()
	calls := mock.calls.AddHistoryForExistingClient
	mock.lockAddHistoryForExistingClient.RUnlock()
	return calls
}

func (mock *recordServiceMock) GetHistory(ctx context.Context, clientName string) ([]domain.HistoryEntry, error) {
	if mock.GetHistoryFunc == nil {
		panic("recordServiceMock.GetHistoryFunc: method is nil but recordService.GetHistory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ClientName string
	}{Ctx: ctx, ClientName: clientName}
	mock.lockGetHistory.Lock()
	mock.calls.GetHistory = append(mock.calls.GetHistory, callInfo)
	mock.lockGetHistory.Unlock()
	return mock.GetHistoryFunc(ctx, clientName)
}

func (mock *recordServiceMock) GetHistoryCalls() []struct {
	Ctx        context.Context
	ClientName string
} {
	mock.lockGetHistory.RLock()
	calls := mock.calls.GetHistory
	mock.lockGetHistory.RUnlock()
	return calls
}

func (mock *recordServiceMock) ListClients(ctx context.Context) ([]domain.Client, error) {
	if mock.ListClientsFunc == nil {
		panic("recordServiceMock.ListClientsFunc: method is nil but recordService.ListClients was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListClients.Lock()
	mock.calls.ListClients = append(mock.calls.ListClients, callInfo)
	mock.lockListClients.Unlock()
	return mock.ListClientsFunc(ctx)
}

func (mock *recordServiceMock) ListClientsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListClients.RLock()
	calls := mock.calls.ListClients
	mock.lockListClients.RUnlock()
	return calls
}

func (mock *recordServiceMock) NextRepairOrderNumber(ctx context.Context) (int64, error) {
	if mock.NextRepairOrderNumberFunc == nil {
		panic("recordServiceMock.NextRepairOrderNumberFunc: method is nil but recordService.NextRepairOrderNumber was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockNextRepairOrderNumber.Lock()
	mock.calls.NextRepairOrderNumber = append(mock.calls.NextRepairOrderNumber, callInfo)
	mock.lockNextRepairOrderNumber.Unlock()
	return mock.NextRepairOrderNumberFunc(ctx)
}

func (mock *recordServiceMock) NextRepairOrderNumberCalls() []struct {
	Ctx context.Context
} {
	mock.lockNextRepairOrderNumber.RLock()
	calls := mock.calls.NextRepairOrderNumber
	mock.lockNextRepairOrderNumber.RUnlock()
	return calls
}
