package generator

import (
	"context"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
	"google.golang.org/genai"
)

// ContentRequest は外部の生成サービスへ送る 1 回分のリクエストです。
type ContentRequest struct {
	APIKey string
	Model  string
	Parts  []*genai.Part
	Config *genai.GenerateContentConfig
}

// ContentService は、パーツと生成設定を受け取ってテキストを返す生成サービスの抽象です。
// 成功時にテキストが空であることはエラーではありません。
type ContentService interface {
	GenerateContent(ctx context.Context, req ContentRequest) (string, error)
}

// PoemGenerator はビジネスロジック層が利用する統合窓口です。
type PoemGenerator interface {
	GeneratePoem(ctx context.Context, image domain.ImagePayload, options domain.PoemOptions) (string, error)
}
