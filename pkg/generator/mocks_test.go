package generator

import (
	"context"
)

// --- Mocks ---

// mockContentService は呼び出し回数と最後のリクエストを記録します。
type mockContentService struct {
	calls        int
	lastRequest  ContentRequest
	generateFunc func(ctx context.Context, req ContentRequest) (string, error)
}

func (m *mockContentService) GenerateContent(ctx context.Context, req ContentRequest) (string, error) {
	m.calls++
	m.lastRequest = req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return "", nil
}

func returnsText(text string) func(ctx context.Context, req ContentRequest) (string, error) {
	return func(ctx context.Context, req ContentRequest) (string, error) {
		return text, nil
	}
}
