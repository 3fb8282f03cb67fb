package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
	"github.com/shouni/gemini-poem-kit/pkg/prompt"
)

// GeminiPoemGenerator は画像とスタイル設定から詩を生成するクライアントです。
// 構築後は状態を変更しないため、複数の goroutine から同時に利用できます。
type GeminiPoemGenerator struct {
	service ContentService
	apiKey  string
	model   string
}

// NewGeminiPoemGenerator は依存関係を注入して GeminiPoemGenerator を初期化します。
// API キーが空でも構築は成功し、GeneratePoem の呼び出し時に ConfigurationError になります。
func NewGeminiPoemGenerator(service ContentService, cfg Config) (*GeminiPoemGenerator, error) {
	if service == nil {
		return nil, fmt.Errorf("service (ContentService) is required")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	return &GeminiPoemGenerator{
		service: service,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   model,
	}, nil
}

// Model は使用するモデル名を返します。
func (g *GeminiPoemGenerator) Model() string {
	return g.model
}

// GeneratePoem は画像と設定から詩を 1 回だけ生成します。リトライは行いません。
func (g *GeminiPoemGenerator) GeneratePoem(ctx context.Context, image domain.ImagePayload, options domain.PoemOptions) (string, error) {
	if g.apiKey == "" {
		return "", &ConfigurationError{Message: missingAPIKeyMessage}
	}

	imgPart, err := toImagePart(image)
	if err != nil {
		return "", &GenerationError{Model: g.model, Cause: err}
	}

	req := ContentRequest{
		APIKey: g.apiKey,
		Model:  g.model,
		Parts:  buildParts(imgPart, prompt.BuildPrompt(options)),
		Config: generationConfig(),
	}

	slog.InfoContext(ctx, "Gemini詩生成リクエストを送信します",
		"model", g.model, "mode", options.Mode.String(), "mime_type", image.MimeType)

	text, err := g.service.GenerateContent(ctx, req)
	if err != nil {
		return "", &GenerationError{Model: g.model, Cause: err}
	}

	if text == "" {
		slog.WarnContext(ctx, "Geminiから空の応答が返されました", "model", g.model)
		return FallbackPoem, nil
	}
	return text, nil
}
