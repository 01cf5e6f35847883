package topic

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateStructuredFunc func(ctx context.Context, settings domain.Settings, prompt string, schema provider.Schema, dst any) error

	calls struct {
		GenerateStructured []struct {
			Ctx      context.Context
			Settings domain.Settings
			Prompt   string
			Schema   provider.Schema
			Dst      any
		}
	}
	lockGenerateStructured sync.RWMutex
}

func (mock *generatorMock) GenerateStructured(ctx context.Context, settings domain.Settings, prompt string, schema provider.Schema, dst any) error {
	if mock.GenerateStructuredFunc == nil {
		panic("generatorMock.GenerateStructuredFunc: method is nil but generator.GenerateStructured was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Settings domain.Settings
		Prompt   string
		Schema   provider.Schema
		Dst      any
	}{Ctx: ctx, Settings: settings, Prompt: prompt, Schema: schema, Dst: dst}
	mock.lockGenerateStructured.Lock()
	mock.calls.GenerateStructured = append(mock.calls.GenerateStructured, callInfo)
	mock.lockGenerateStructured.Unlock()
	return mock.GenerateStructuredFunc(ctx, settings, prompt, schema, dst)
}

func (mock *generatorMock) GenerateStructuredCalls() []struct {
	Ctx      context.Context
	Settings domain.Settings
	Prompt   string
	Schema   provider.Schema
	Dst      any
} {
	mock.lockGenerateStructured.RLock()
	calls := mock.calls.GenerateStructured
	mock.lockGenerateStructured.RUnlock()
	return calls
}
