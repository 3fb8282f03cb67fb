package imgutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
)

var (
	// ErrEmptyImage は画像データが空の場合に返されます。
	ErrEmptyImage = errors.New("image data is empty")
	// ErrNotImage は MIME タイプが image/* ではない場合に返されます。
	ErrNotImage = errors.New("data is not an image")
)

// FromBytes は生の画像バイト列を MIME タイプ判定付きで ImagePayload に変換します。
func FromBytes(data []byte) (domain.ImagePayload, error) {
	if len(data) == 0 {
		return domain.ImagePayload{}, ErrEmptyImage
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.ImagePayload{}, fmt.Errorf("%w: detected %s", ErrNotImage, mimeType)
	}

	return domain.ImagePayload{
		Data:     base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}, nil
}

// ParseDataURL はブラウザの FileReader.readAsDataURL が返す
// "data:image/png;base64,...." 形式の文字列を ImagePayload に変換します。
func ParseDataURL(s string) (domain.ImagePayload, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "data:")
	if !ok {
		return domain.ImagePayload{}, fmt.Errorf("data URL must start with \"data:\"")
	}

	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return domain.ImagePayload{}, fmt.Errorf("data URL has no payload separator")
	}

	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return domain.ImagePayload{}, fmt.Errorf("data URL is not base64 encoded")
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.ImagePayload{}, fmt.Errorf("%w: %s", ErrNotImage, mimeType)
	}
	if data == "" {
		return domain.ImagePayload{}, ErrEmptyImage
	}

	return domain.ImagePayload{Data: data, MimeType: mimeType}, nil
}

// Decode は ImagePayload の base64 データをバイト列に戻します。
func Decode(p domain.ImagePayload) ([]byte, error) {
	if strings.TrimSpace(p.Data) == "" {
		return nil, ErrEmptyImage
	}
	data, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("base64 デコード失敗: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	return data, nil
}
