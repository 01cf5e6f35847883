package scheduler

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

var _ prewarmer = &prewarmerMock{}

type prewarmerMock struct {
	PrewarmFunc func(ctx context.Context, settings domain.Settings) (bool, error)

	calls struct {
		Prewarm []struct {
			Ctx      context.Context
			Settings domain.Settings
		}
	}
	lockPrewarm sync.RWMutex
}

func (mock *prewarmerMock) Prewarm(ctx context.Context, settings domain.Settings) (bool, error) {
	if mock.PrewarmFunc == nil {
		panic("prewarmerMock.PrewarmFunc: method is nil but prewarmer.Prewarm was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Settings domain.Settings
	}{Ctx: ctx, Settings: settings}
	mock.lockPrewarm.Lock()
	mock.calls.Prewarm = append(mock.calls.Prewarm, callInfo)
	mock.lockPrewarm.Unlock()
	return mock.PrewarmFunc(ctx, settings)
}

func (mock *prewarmerMock) PrewarmCalls() []struct {
	Ctx      context.Context
	Settings domain.Settings
} {
	mock.lockPrewarm.RLock()
	calls := mock.calls.Prewarm
	mock.lockPrewarm.RUnlock()
	return calls
}

var _ settingsSource = &settingsSourceMock{}

type settingsSourceMock struct {
	SettingsFunc func() domain.Settings

	calls struct {
		Settings []struct{}
	}
	lockSettings sync.RWMutex
}

func (mock *settingsSourceMock) Settings() domain.Settings {
	if mock.SettingsFunc == nil {
		panic("settingsSourceMock.SettingsFunc: method is nil but settingsSource.Settings was just called")
	}
	mock.lockSettings.Lock()
	mock.calls.Settings = append(mock.calls.Settings, struct{}{})
	mock.lockSettings.Unlock()
	return mock.SettingsFunc()
}

func (mock *settingsSourceMock) SettingsCalls() []struct{} {
	mock.lockSettings.RLock()
	calls := mock.calls.Settings
	mock.lockSettings.RUnlock()
	return calls
}
