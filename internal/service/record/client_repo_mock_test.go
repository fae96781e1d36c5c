package record

import (
	"context"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
	"sync"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	CreateFunc    func(ctx context.Context, c domain.Client) error
	GetByNameFunc func(ctx context.Context, name string) (*domain.Client, error)
	ListFunc      func(ctx context.Context) ([]domain.Client, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Client
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCreate    sync.RWMutex
	lockGetByName sync.RWMutex
	lockList      sync.RWMutex
}

func (mock *clientRepoMock) Create(ctx context.Context, c domain.Client) error {
	if mock.CreateFunc == nil {
		panic("clientRepoMock.CreateFunc: method is nil but clientRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Client
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *clientRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Client
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *clientRepoMock) GetByName(ctx context.Context, name string) (*domain.Client, error) {
	if mock.GetByNameFunc == nil {
		panic("clientRepoMock.GetByNameFunc: method is nil but clientRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *clientRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *clientRepoMock) List(ctx context.Context) ([]domain.Client, error) {
	if mock.ListFunc == nil {
		panic("clientRepoMock.ListFunc: method is nil but clientRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *clientRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
