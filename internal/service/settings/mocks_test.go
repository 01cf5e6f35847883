package settings

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

var _ settingsStore = &settingsStoreMock{}

type settingsStoreMock struct {
	SaveSettingsFunc func(ctx context.Context, settings domain.Settings) error

	calls struct {
		SaveSettings []struct {
			Ctx      context.Context
			Settings domain.Settings
		}
	}
	lockSaveSettings sync.RWMutex
}

func (mock *settingsStoreMock) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if mock.SaveSettingsFunc == nil {
		panic("settingsStoreMock.SaveSettingsFunc: method is nil but settingsStore.SaveSettings was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Settings domain.Settings
	}{Ctx: ctx, Settings: settings}
	mock.lockSaveSettings.Lock()
	mock.calls.SaveSettings = append(mock.calls.SaveSettings, callInfo)
	mock.lockSaveSettings.Unlock()
	return mock.SaveSettingsFunc(ctx, settings)
}

func (mock *settingsStoreMock) SaveSettingsCalls() []struct {
	Ctx      context.Context
	Settings domain.Settings
} {
	mock.lockSaveSettings.RLock()
	calls := mock.calls.SaveSettings
	mock.lockSaveSettings.RUnlock()
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
