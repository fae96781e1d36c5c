package report

import (
	"context"
	"sync"
)

var _ mailSender = &mailSenderMock{}

type mailSenderMock struct {
	SendFunc func(ctx context.Context, recipient string, subject string, body string) (string, error)

	calls struct {
		Send []struct {
			Ctx       context.Context
			Recipient string
			Subject   string
			Body      string
		}
	}
	lockSend sync.RWMutex
}

func (mock *mailSenderMock) Send(ctx context.Context, recipient string, subject string, body string) (string, error) {
	if mock.SendFunc == nil {
		panic("mailSenderMock.SendFunc: method is nil but mailSender.Send was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Recipient string
		Subject   string
		Body      string
	}{Ctx: ctx, Recipient: recipient, Subject: subject, Body: body}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, recipient, subject, body)
}

func (mock *mailSenderMock) SendCalls() []struct {
	Ctx       context.Context
	Recipient string
	Subject   string
	Body      string
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
