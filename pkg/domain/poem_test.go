package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoemOptions_ZeroValueIsDefault(t *testing.T) {
	var zero PoemOptions
	assert.Equal(t, DefaultPoemOptions(), zero)
	assert.Equal(t, ModeBest, zero.Mode)
	assert.Equal(t, "Free Verse", zero.Form.String())
	assert.Equal(t, "Hopeful", zero.Tone.String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"GENERAL", ModeGeneral, false},
		{"style", ModeStyle, false},
		{" Narrative ", ModeNarrative, false},
		{"BEST", ModeBest, false},
		{"EPIC", ModeBest, true},
		{"", ModeBest, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormAndTone(t *testing.T) {
	t.Run("詩形は表示名とワイヤー名の両方を受け付ける", func(t *testing.T) {
		f, err := ParseForm("Free Verse")
		require.NoError(t, err)
		assert.Equal(t, FormFreeVerse, f)

		f, err = ParseForm("villanelle")
		require.NoError(t, err)
		assert.Equal(t, FormVillanelle, f)

		f, err = ParseForm("FREE_VERSE")
		require.NoError(t, err)
		assert.Equal(t, FormFreeVerse, f)
	})

	t.Run("未知の詩形はエラー", func(t *testing.T) {
		_, err := ParseForm("Ode")
		assert.ErrorIs(t, err, ErrUnknownOption)
	})

	t.Run("トーンは大文字小文字を区別しない", func(t *testing.T) {
		tone, err := ParseTone("MYSTERIOUS")
		require.NoError(t, err)
		assert.Equal(t, ToneMysterious, tone)
	})

	t.Run("未知のトーンはエラー", func(t *testing.T) {
		_, err := ParseTone("Angry")
		assert.ErrorIs(t, err, ErrUnknownOption)
	})
}

func TestEnumLists(t *testing.T) {
	assert.Len(t, Modes(), 4)
	assert.Len(t, Forms(), 6)
	assert.Len(t, Tones(), 5)
	for _, f := range Forms() {
		assert.True(t, f.Valid(), f.String())
	}
	assert.False(t, Form(42).Valid())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestPoemOptions_JSON(t *testing.T) {
	t.Run("名前でエンコードされる", func(t *testing.T) {
		opts := PoemOptions{Mode: ModeStyle, Form: FormSonnet, Tone: ToneRomantic, CustomTopic: "rain"}
		raw, err := json.Marshal(opts)
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"STYLE","form":"Sonnet","tone":"Romantic","customTopic":"rain"}`, string(raw))
	})

	t.Run("省略されたフィールドは既定値になる", func(t *testing.T) {
		var opts PoemOptions
		require.NoError(t, json.Unmarshal([]byte(`{"mode":"NARRATIVE","tone":"Melancholy"}`), &opts))
		assert.Equal(t, ModeNarrative, opts.Mode)
		assert.Equal(t, ToneMelancholy, opts.Tone)
		assert.Equal(t, FormFreeVerse, opts.Form)
	})

	t.Run("未知のモードはデコードエラー", func(t *testing.T) {
		var opts PoemOptions
		err := json.Unmarshal([]byte(`{"mode":"EPIC"}`), &opts)
		assert.ErrorIs(t, err, ErrUnknownOption)
	})

	t.Run("範囲外の値はエンコードできない", func(t *testing.T) {
		_, err := json.Marshal(PoemOptions{Mode: Mode(99)})
		assert.Error(t, err)
	})
}
