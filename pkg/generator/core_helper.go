package generator

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
	"github.com/shouni/gemini-poem-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// toImagePart は ImagePayload を InlineData の genai.Part に変換します。
// 画像の中身そのものは検証せず、MIME タイプはそのままサービスに渡します。
func toImagePart(image domain.ImagePayload) (*genai.Part, error) {
	mimeType := strings.TrimSpace(image.MimeType)
	if mimeType == "" {
		return nil, fmt.Errorf("%w: mime type is empty", ErrInvalidImage)
	}

	data, err := imgutil.Decode(image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}, nil
}

// buildParts は画像、プロンプトの順でパーツを並べます。
func buildParts(imgPart *genai.Part, promptText string) []*genai.Part {
	return []*genai.Part{imgPart, genai.NewPartFromText(promptText)}
}

// generationConfig はリクエストごとに新しい生成設定を返します。
func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr(Temperature),
		TopK:              genai.Ptr(TopK),
		TopP:              genai.Ptr(TopP),
	}
}
