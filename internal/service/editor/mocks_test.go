package editor

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

var _ draftStore = &draftStoreMock{}

type draftStoreMock struct {
	SaveDraftFunc   func(ctx context.Context, topicKey string, text string) error
	RemoveDraftFunc func(ctx context.Context, topicKey string) error

	calls struct {
		SaveDraft []struct {
			Ctx      context.Context
			TopicKey string
			Text     string
		}
		RemoveDraft []struct {
			Ctx      context.Context
			TopicKey string
		}
	}
	lockSaveDraft   sync.RWMutex
	lockRemoveDraft sync.RWMutex
}

func (mock *draftStoreMock) SaveDraft(ctx context.Context, topicKey string, text string) error {
	if mock.SaveDraftFunc == nil {
		panic("draftStoreMock.SaveDraftFunc: method is nil but draftStore.SaveDraft was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TopicKey string
		Text     string
	}{Ctx: ctx, TopicKey: topicKey, Text: text}
	mock.lockSaveDraft.Lock()
	mock.calls.SaveDraft = append(mock.calls.SaveDraft, callInfo)
	mock.lockSaveDraft.Unlock()
	return mock.SaveDraftFunc(ctx, topicKey, text)
}

func (mock *draftStoreMock) SaveDraftCalls() []struct {
	Ctx      context.Context
	TopicKey string
	Text     string
} {
	mock.lockSaveDraft.RLock()
	calls := mock.calls.SaveDraft
	mock.lockSaveDraft.RUnlock()
	return calls
}

func (mock *draftStoreMock) RemoveDraft(ctx context.Context, topicKey string) error {
	if mock.RemoveDraftFunc == nil {
		panic("draftStoreMock.RemoveDraftFunc: method is nil but draftStore.RemoveDraft was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TopicKey string
	}{Ctx: ctx, TopicKey: topicKey}
	mock.lockRemoveDraft.Lock()
	mock.calls.RemoveDraft = append(mock.calls.RemoveDraft, callInfo)
	mock.lockRemoveDraft.Unlock()
	return mock.RemoveDraftFunc(ctx, topicKey)
}

func (mock *draftStoreMock) RemoveDraftCalls() []struct {
	Ctx      context.Context
	TopicKey string
} {
	mock.lockRemoveDraft.RLock()
	calls := mock.calls.RemoveDraft
	mock.lockRemoveDraft.RUnlock()
	return calls
}

var _ progressTracker = &progressTrackerMock{}

type progressTrackerMock struct {
	RecomputeFunc func(ctx context.Context, sess *session.Session) (domain.Progress, error)

	calls struct {
		Recompute []struct {
			Ctx  context.Context
			Sess *session.Session
		}
	}
	lockRecompute sync.RWMutex
}

func (mock *progressTrackerMock) Recompute(ctx context.Context, sess *session.Session) (domain.Progress, error) {
	if mock.RecomputeFunc == nil {
		panic("progressTrackerMock.RecomputeFunc: method is nil but progressTracker.Recompute was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess *session.Session
	}{Ctx: ctx, Sess: sess}
	mock.lockRecompute.Lock()
	mock.calls.Recompute = append(mock.calls.Recompute, callInfo)
	mock.lockRecompute.Unlock()
	return mock.RecomputeFunc(ctx, sess)
}

func (mock *progressTrackerMock) RecomputeCalls() []struct {
	Ctx  context.Context
	Sess *session.Session
} {
	mock.lockRecompute.RLock()
	calls := mock.calls.Recompute
	mock.lockRecompute.RUnlock()
	return calls
}
