package export

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/store"
)

var _ journalReader = &journalReaderMock{}

type journalReaderMock struct {
	DraftsFunc        func(ctx context.Context) ([]store.Draft, error)
	DailyTopicFunc    func(ctx context.Context, dateKey string) (domain.Topic, bool, error)
	CompletedDaysFunc func(ctx context.Context) (domain.CompletionSet, error)

	calls struct {
		Drafts []struct {
			Ctx context.Context
		}
		DailyTopic []struct {
			Ctx     context.Context
			DateKey string
		}
		CompletedDays []struct {
			Ctx context.Context
		}
	}
	lockDrafts        sync.RWMutex
	lockDailyTopic    sync.RWMutex
	lockCompletedDays sync.RWMutex
}

func (mock *journalReaderMock) Drafts(ctx context.Context) ([]store.Draft, error) {
	if mock.DraftsFunc == nil {
		panic("journalReaderMock.DraftsFunc: method is nil but journalReader.Drafts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDrafts.Lock()
	mock.calls.Drafts = append(mock.calls.Drafts, callInfo)
	mock.lockDrafts.Unlock()
	return mock.DraftsFunc(ctx)
}

func (mock *journalReaderMock) DraftsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDrafts.RLock()
	calls := mock.calls.Drafts
	mock.lockDrafts.RUnlock()
	return calls
}

func (mock *journalReaderMock) DailyTopic(ctx context.Context, dateKey string) (domain.Topic, bool, error) {
	if mock.DailyTopicFunc == nil {
		panic("journalReaderMock.DailyTopicFunc: method is nil but journalReader.DailyTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DateKey string
	}{Ctx: ctx, DateKey: dateKey}
	mock.lockDailyTopic.Lock()
	mock.calls.DailyTopic = append(mock.calls.DailyTopic, callInfo)
	mock.lockDailyTopic.Unlock()
	return mock.DailyTopicFunc(ctx, dateKey)
}

func (mock *journalReaderMock) DailyTopicCalls() []struct {
	Ctx     context.Context
	DateKey string
} {
	mock.lockDailyTopic.RLock()
	calls := mock.calls.DailyTopic
	mock.lockDailyTopic.RUnlock()
	return calls
}

func (mock *journalReaderMock) CompletedDays(ctx context.Context) (domain.CompletionSet, error) {
	if mock.CompletedDaysFunc == nil {
		panic("journalReaderMock.CompletedDaysFunc: method is nil but journalReader.CompletedDays was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCompletedDays.Lock()
	mock.calls.CompletedDays = append(mock.calls.CompletedDays, callInfo)
	mock.lockCompletedDays.Unlock()
	return mock.CompletedDaysFunc(ctx)
}

func (mock *journalReaderMock) CompletedDaysCalls() []struct {
	Ctx context.Context
} {
	mock.lockCompletedDays.RLock()
	calls := mock.calls.CompletedDays
	mock.lockCompletedDays.RUnlock()
	return calls
}
