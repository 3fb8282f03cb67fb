package prompt

import (
	"strings"
	"testing"

	"github.com/shouni/gemini-poem-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_General(t *testing.T) {
	t.Run("詩形やトーンに関係なく固定テンプレートを返す", func(t *testing.T) {
		for _, f := range domain.Forms() {
			for _, tone := range domain.Tones() {
				got := BuildPrompt(domain.PoemOptions{Mode: domain.ModeGeneral, Form: f, Tone: tone})
				assert.Equal(t, generalTemplate, got)
			}
		}
	})
}

func TestBuildPrompt_Style(t *testing.T) {
	for _, f := range domain.Forms() {
		t.Run(f.String(), func(t *testing.T) {
			got := BuildPrompt(domain.PoemOptions{Mode: domain.ModeStyle, Form: f, Tone: domain.ToneRomantic})

			assert.GreaterOrEqual(t, strings.Count(got, f.String()), 2)
			assert.True(t, strings.HasPrefix(got, "Create a "+f.String()+" based on the attached image."))
			assert.True(t, strings.HasSuffix(got, "Adhere strictly to the structural rules of a "+f.String()+"."))
			assert.NotContains(t, got, "Romantic")
		})
	}
}

func TestBuildPrompt_Narrative(t *testing.T) {
	for _, tone := range domain.Tones() {
		t.Run(tone.String(), func(t *testing.T) {
			got := BuildPrompt(domain.PoemOptions{Mode: domain.ModeNarrative, Form: domain.FormHaiku, Tone: tone})

			assert.Equal(t, 1, strings.Count(got, tone.String()))
			assert.Contains(t, got, "convey a sense of "+tone.String()+" and suggest")
			assert.NotContains(t, got, "Haiku")
		})
	}
}

func TestBuildPrompt_Best(t *testing.T) {
	t.Run("BEST は固定テンプレート", func(t *testing.T) {
		got := BuildPrompt(domain.PoemOptions{Mode: domain.ModeBest, Form: domain.FormSonnet})
		assert.Equal(t, bestTemplate, got)
		assert.Contains(t, got, "12-16 lines")
	})

	t.Run("未定義のモードは BEST にフォールバックする", func(t *testing.T) {
		got := BuildPrompt(domain.PoemOptions{Mode: domain.Mode(42)})
		assert.Equal(t, bestTemplate, got)
	})
}

func TestBuildPrompt_CustomTopic(t *testing.T) {
	modes := append(domain.Modes(), domain.Mode(-1))

	for _, m := range modes {
		base := BuildPrompt(domain.PoemOptions{Mode: m, Form: domain.FormElegy, Tone: domain.ToneWhimsical})

		t.Run(m.String()+"/空白のみのトピックは無視される", func(t *testing.T) {
			for _, topic := range []string{"", " ", "\t\n  "} {
				got := BuildPrompt(domain.PoemOptions{Mode: m, Form: domain.FormElegy, Tone: domain.ToneWhimsical, CustomTopic: topic})
				assert.Equal(t, base, got)
			}
		})

		t.Run(m.String()+"/トピックはトリムせずに追記される", func(t *testing.T) {
			topic := "  a lighthouse at dusk "
			got := BuildPrompt(domain.PoemOptions{Mode: m, Form: domain.FormElegy, Tone: domain.ToneWhimsical, CustomTopic: topic})
			assert.Equal(t, base+"\n\nAdditionally, incorporate the following theme or element: "+topic, got)
		})
	}
}
