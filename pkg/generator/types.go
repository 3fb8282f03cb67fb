package generator

const (
	// DefaultModel は Config.Model が空のときに使うモデルです。
	DefaultModel = "gemini-2.5-flash"

	// FallbackPoem はサービスが空のテキストを返したときの結果です。
	FallbackPoem = "No poem generated. Please try again."

	// SystemInstruction は出力を詩の本文（と任意の太字タイトル）だけに制限します。
	SystemInstruction = "You are a world-class poet. Your output should be purely the poem itself, possibly with a title at the top in bold (markdown format), but do not include conversational filler like 'Here is the poem'."

	Temperature float32 = 0.8
	TopK        float32 = 40
	TopP        float32 = 0.95

	missingAPIKeyMessage = "API Key is missing."
)

// Config は GeminiPoemGenerator の設定です。
type Config struct {
	APIKey string
	Model  string
}
