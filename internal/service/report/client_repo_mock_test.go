package report

import (
	"context"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
	"sync"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	GetByNameFunc func(ctx context.Context, name string) (*domain.Client, error)

	calls struct {
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockGetByName sync.RWMutex
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
