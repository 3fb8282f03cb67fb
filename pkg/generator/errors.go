package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidImage は画像ペイロードが空、または base64 として解釈できない場合の原因エラーです。
var ErrInvalidImage = errors.New("invalid image payload")

// ConfigurationError は生成を始める前に必要な設定（API キーなど）が欠けていることを表します。
// この場合、外部サービスへの通信は一切行われません。
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// GenerationError は外部サービスの呼び出し、または呼び出しの準備に失敗したことを表します。
// 自動リトライは行わず、元のエラーを Cause に保持したまま呼び出し元に返します。
type GenerationError struct {
	Model string
	Cause error
}

func (e *GenerationError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("Gemini詩生成エラー: %v", e.Cause)
	}
	return fmt.Sprintf("Gemini詩生成エラー (%s): %v", e.Model, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// IsConfigurationError は err の連鎖に ConfigurationError が含まれるかを返します。
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsGenerationError は err の連鎖に GenerationError が含まれるかを返します。
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
