package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-poem-kit/pkg/generator"
	"google.golang.org/genai"
)

// GeminiService は google.golang.org/genai を使って generator.ContentService を実装するアダプターです。
// リクエストに含まれる API キーでその都度クライアントを作るため、共有する可変状態を持ちません。
type GeminiService struct {
	httpClient *http.Client
	baseURL    string
}

// GeminiOption は GeminiService の設定を変更します。
type GeminiOption func(*GeminiService)

// WithHTTPClient は SDK が使う HTTP クライアントを差し替えます（タイムアウト設定など）。
func WithHTTPClient(c *http.Client) GeminiOption {
	return func(s *GeminiService) { s.httpClient = c }
}

// WithBaseURL は API のベース URL を差し替えます。空文字の場合は SDK の既定値を使います。
func WithBaseURL(u string) GeminiOption {
	return func(s *GeminiService) { s.baseURL = u }
}

// NewGeminiService は GeminiService を初期化します。
func NewGeminiService(opts ...GeminiOption) *GeminiService {
	s := &GeminiService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ generator.ContentService = (*GeminiService)(nil)

// GenerateContent は 1 件のユーザーコンテンツとしてパーツを送信し、応答テキストを返します。
func (s *GeminiService) GenerateContent(ctx context.Context, req generator.ContentRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      req.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  s.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: s.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}

	contents := []*genai.Content{genai.NewContentFromParts(req.Parts, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, req.Model, contents, req.Config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			slog.WarnContext(ctx, "Gemini APIがエラーを返しました",
				"model", req.Model, "code", apiErr.Code, "status", apiErr.Status)
		}
		return "", fmt.Errorf("Geminiへのリクエストに失敗しました: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		slog.WarnContext(ctx, "Geminiの応答にテキストが含まれていません",
			"model", req.Model, "finish_reason", finishReason(resp))
	}
	return text, nil
}

// extractText は最初の候補のテキストパーツを連結して返します。
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	return resp.Text()
}

func finishReason(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return "NO_RESPONSE"
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return string(resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "NO_CANDIDATES"
	}
	return string(resp.Candidates[0].FinishReason)
}
