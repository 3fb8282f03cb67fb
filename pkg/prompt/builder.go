package prompt

import (
	"strings"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
)

// BuildPrompt は詩のスタイル設定から Gemini に渡す指示文を組み立てます。
// 副作用はなく、同じ入力には常に同じ文字列を返します。
func BuildPrompt(options domain.PoemOptions) string {
	var text string

	switch options.Mode {
	case domain.ModeGeneral:
		text = generalTemplate
	case domain.ModeStyle:
		text = styleText(options.Form.String())
	case domain.ModeNarrative:
		text = narrativeText(options.Tone.String())
	default:
		// ModeBest と未定義のモード値はどちらも BEST テンプレートになります。
		// 未定義値をエラーにするかは入力境界 (domain.ParseMode) 側で判断します。
		text = bestTemplate
	}

	if strings.TrimSpace(options.CustomTopic) != "" {
		// トピックはトリムせずにそのまま埋め込む
		text += topicClause + options.CustomTopic
	}

	return text
}
