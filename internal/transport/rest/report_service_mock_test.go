package rest

import (
	"context"
	"github.com/heartmarshall/repairshop-backend/internal/service/report"
	"sync"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	EmailReportFunc func(ctx context.Context, clientName string, to string) (string, error)
	RenderFunc      func(ctx context.Context, clientName string) (string, error)
	SendEmailFunc   func(ctx context.Context, input report.SendEmailInput) (string, error)

	calls struct {
		EmailReport []struct {
			Ctx        context.Context
			ClientName string
			To         string
		}
		Render []struct {
			Ctx        context.Context
			ClientName string
		}
		SendEmail []struct {
			Ctx   context.Context
			Input report.SendEmailInput
		}
	}
	lockEmailReport sync.RWMutex
	lockRender      sync.RWMutex
	lockSendEmail   sync.RWMutex
}

func (mock *reportServiceMock) EmailReport(ctx context.Context, clientName string, to string) (string, error) {
	if mock.EmailReportFunc == nil {
		panic("reportServiceMock.EmailReportFunc: method is nil but reportService.EmailReport was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ClientName string
		To         string
	}{Ctx: ctx, ClientName: clientName, To: to}
	mock.lockEmailReport.Lock()
	mock.calls.EmailReport = append(mock.calls.EmailReport, callInfo)
	mock.lockEmailReport.Unlock()
	return mock.EmailReportFunc(ctx, clientName, to)
}

func (mock *reportServiceMock) EmailReportCalls() []struct {
	Ctx        context.Context
	ClientName string
	To         string
} {
	mock.lockEmailReport.RLock()
	calls := mock.calls.EmailReport
	mock.lockEmailReport.RUnlock()
	return calls
}

func (mock *reportServiceMock) Render(ctx context.Context, clientName string) (string, error) {
	if mock.RenderFunc == nil {
		panic("reportServiceMock.RenderFunc: method is nil but reportService.Render was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ClientName string
	}{Ctx: ctx, ClientName: clientName}
	mock.lockRender.Lock()
	mock.calls.Render = append(mock.calls.Render, callInfo)
	mock.lockRender.Unlock()
	return mock.RenderFunc(ctx, clientName)
}

func (mock *reportServiceMock) RenderCalls() []struct {
	Ctx        context.Context
	ClientName string
} {
	mock.lockRender.RLock()
	calls := mock.calls.Render
	mock.lockRender.RUnlock()
	return calls
}

func (mock *reportServiceMock) SendEmail(ctx context.Context, input report.SendEmailInput) (string, error) {
	if mock.SendEmailFunc == nil {
		panic("reportServiceMock.SendEmailFunc: method is nil but reportService.SendEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input report.SendEmailInput
	}{Ctx: ctx, Input: input}
	mock.lockSendEmail.Lock()
	mock.calls.SendEmail = append(mock.calls.SendEmail, callInfo)
	mock.lockSendEmail.Unlock()
	return mock.SendEmailFunc(ctx, input)
}

func (mock *reportServiceMock) SendEmailCalls() []struct {
	Ctx   context.Context
	Input report.SendEmailInput
} {
	mock.lockSendEmail.RLock()
	calls := mock.calls.SendEmail
	mock.lockSendEmail.RUnlock()
	return calls
}
