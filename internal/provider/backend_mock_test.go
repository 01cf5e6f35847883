package provider

import (
	"context"
	"encoding/json"
	"sync"
)

var _ Backend = &backendMock{}

type backendMock struct {
	GenerateTextFunc       func(ctx context.Context, prompt string) (string, error)
	GenerateStructuredFunc func(ctx context.Context, prompt string, schema Schema) (json.RawMessage, error)

	calls struct {
		GenerateText []struct {
			Ctx    context.Context
			Prompt string
		}
		GenerateStructured []struct {
			Ctx    context.Context
			Prompt string
			Schema Schema
		}
	}
	lockGenerateText       sync.RWMutex
	lockGenerateStructured sync.RWMutex
}

func (mock *backendMock) GenerateText(ctx context.Context, prompt string) (string, error) {
	if mock.GenerateTextFunc == nil {
		panic("backendMock.GenerateTextFunc: method is nil but Backend.GenerateText was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockGenerateText.Lock()
	mock.calls.GenerateText = append(mock.calls.GenerateText, callInfo)
	mock.lockGenerateText.Unlock()
	return mock.GenerateTextFunc(ctx, prompt)
}

func (mock *backendMock) GenerateTextCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockGenerateText.RLock()
	calls := mock.calls.GenerateText
	mock.lockGenerateText.RUnlock()
	return calls
}

func (mock *backendMock) GenerateStructured(ctx context.Context, prompt string, schema Schema) (json.RawMessage, error) {
	if mock.GenerateStructuredFunc == nil {
		panic("backendMock.GenerateStructuredFunc: method is nil but Backend.GenerateStructured was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
		Schema Schema
	}{Ctx: ctx, Prompt: prompt, Schema: schema}
	mock.lockGenerateStructured.Lock()
	mock.calls.GenerateStructured = append(mock.calls.GenerateStructured, callInfo)
	mock.lockGenerateStructured.Unlock()
	return mock.GenerateStructuredFunc(ctx, prompt, schema)
}

func (mock *backendMock) GenerateStructuredCalls() []struct {
	Ctx    context.Context
	Prompt string
	Schema Schema
} {
	mock.lockGenerateStructured.RLock()
	calls := mock.calls.GenerateStructured
	mock.lockGenerateStructured.RUnlock()
	return calls
}
