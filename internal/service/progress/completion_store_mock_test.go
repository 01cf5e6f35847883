package progress

import (
	"context"
	"sync"
)

var _ completionStore = &completionStoreMock{}

type completionStoreMock struct {
	AddCompletedDayFunc func(ctx context.Context, day int) (bool, error)

	calls struct {
		AddCompletedDay []struct {
			Ctx context.Context
			Day int
		}
	}
	lockAddCompletedDay sync.RWMutex
}

func (mock *completionStoreMock) AddCompletedDay(ctx context.Context, day int) (bool, error) {
	if mock.AddCompletedDayFunc == nil {
		panic("completionStoreMock.AddCompletedDayFunc: method is nil but completionStore.AddCompletedDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Day int
	}{Ctx: ctx, Day: day}
	mock.lockAddCompletedDay.Lock()
	mock.calls.AddCompletedDay = append(mock.calls.AddCompletedDay, callInfo)
	mock.lockAddCompletedDay.Unlock()
	return mock.AddCompletedDayFunc(ctx, day)
}

func (mock *completionStoreMock) AddCompletedDayCalls() []struct {
	Ctx context.Context
	Day int
} {
	mock.lockAddCompletedDay.RLock()
	calls := mock.calls.AddCompletedDay
	mock.lockAddCompletedDay.RUnlock()
	return calls
}
