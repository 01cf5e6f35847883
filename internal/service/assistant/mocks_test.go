package assistant

import (
	"context"
	"sync"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
	"github.com/heartmarshall/lexicon-journal/internal/provider"
	"github.com/heartmarshall/lexicon-journal/internal/session"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateTextFunc       func(ctx context.Context, settings domain.Settings, prompt string) (string, error)
	GenerateStructuredFunc func(ctx context.Context, settings domain.Settings, prompt string, schema provider.Schema, dst any) error

	calls struct {
		GenerateText []struct {
			Ctx      context.Context
			Settings domain.Settings
			Prompt   string
		}
		GenerateStructured []struct {
			Ctx      context.Context
			Settings domain.Settings
			Prompt   string
			Schema   provider.Schema
			Dst      any
		}
	}
	lockGenerateText       sync.RWMutex
	lockGenerateStructured sync.RWMutex
}

func (mock *generatorMock) GenerateText(ctx context.Context, settings domain.Settings, prompt string) (string, error) {
	if mock.GenerateTextFunc == nil {
		panic("generatorMock.GenerateTextFunc: method is nil but generator.GenerateText was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Settings domain.Settings
		Prompt   string
	}{Ctx: ctx, Settings: settings, Prompt: prompt}
	mock.lockGenerateText.Lock()
	mock.calls.GenerateText = append(mock.calls.GenerateText, callInfo)
	mock.lockGenerateText.Unlock()
	return mock.GenerateTextFunc(ctx, settings, prompt)
}

func (mock *generatorMock) GenerateTextCalls() []struct {
	Ctx      context.Context
	Settings domain.Settings
	Prompt   string
} {
	mock.lockGenerateText.RLock()
	calls := mock.calls.GenerateText
	mock.lockGenerateText.RUnlock()
	return calls
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

var _ textApplier = &textApplierMock{}

type textApplierMock struct {
	ApplyForFunc func(ctx context.Context, sess *session.Session, topicKey string, text string) (bool, error)

	calls struct {
		ApplyFor []struct {
			Ctx      context.Context
			Sess     *session.Session
			TopicKey string
			Text     string
		}
	}
	lockApplyFor sync.RWMutex
}

func (mock *textApplierMock) ApplyFor(ctx context.Context, sess *session.Session, topicKey string, text string) (bool, error) {
	if mock.ApplyForFunc == nil {
		panic("textApplierMock.ApplyForFunc: method is nil but textApplier.ApplyFor was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Sess     *session.Session
		TopicKey string
		Text     string
	}{Ctx: ctx, Sess: sess, TopicKey: topicKey, Text: text}
	mock.lockApplyFor.Lock()
	mock.calls.ApplyFor = append(mock.calls.ApplyFor, callInfo)
	mock.lockApplyFor.Unlock()
	return mock.ApplyForFunc(ctx, sess, topicKey, text)
}

func (mock *textApplierMock) ApplyForCalls() []struct {
	Ctx      context.Context
	Sess     *session.Session
	TopicKey string
	Text     string
} {
	mock.lockApplyFor.RLock()
	calls := mock.calls.ApplyFor
	mock.lockApplyFor.RUnlock()
	return calls
}
