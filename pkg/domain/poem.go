package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption は、モード・詩形・トーンの名前が既知の値に一致しない場合に返されます。
var ErrUnknownOption = errors.New("unknown poem option")

// Mode は、どのプロンプトテンプレート群を使うかを決める生成戦略です。
// ゼロ値は ModeBest で、初期状態のモードです。
type Mode int

const (
	ModeBest Mode = iota
	ModeGeneral
	ModeStyle
	ModeNarrative
)

var modeNames = map[Mode]string{
	ModeBest:      "BEST",
	ModeGeneral:   "GENERAL",
	ModeStyle:     "STYLE",
	ModeNarrative: "NARRATIVE",
}

// Modes は選択可能なモードを表示順に返します。
func Modes() []Mode {
	return []Mode{ModeGeneral, ModeStyle, ModeNarrative, ModeBest}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid は m が定義済みのモードかどうかを返します。
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode はワイヤー名 (例: "STYLE") を大文字小文字を区別せずに解釈します。
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return m, nil
		}
	}
	return ModeBest, fmt.Errorf("%w: mode %q", ErrUnknownOption, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, m)
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Form は STYLE モードでのみ使われる詩形です。
type Form int

const (
	FormFreeVerse Form = iota
	FormHaiku
	FormSonnet
	FormLimerick
	FormVillanelle
	FormElegy
)

// 表示名はそのままプロンプトに埋め込まれます。
var formNames = []struct {
	form    Form
	display string
	wire    string
}{
	{FormFreeVerse, "Free Verse", "FREE_VERSE"},
	{FormHaiku, "Haiku", "HAIKU"},
	{FormSonnet, "Sonnet", "SONNET"},
	{FormLimerick, "Limerick", "LIMERICK"},
	{FormVillanelle, "Villanelle", "VILLANELLE"},
	{FormElegy, "Elegy", "ELEGY"},
}

// Forms は選択可能な詩形を表示順に返します。
func Forms() []Form {
	out := make([]Form, 0, len(formNames))
	for _, f := range formNames {
		out = append(out, f.form)
	}
	return out
}

func (f Form) String() string {
	for _, n := range formNames {
		if n.form == f {
			return n.display
		}
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

func (f Form) Valid() bool {
	return f >= FormFreeVerse && f <= FormElegy
}

// ParseForm は表示名 ("Free Verse") とワイヤー名 ("FREE_VERSE") の両方を受け付けます。
func ParseForm(s string) (Form, error) {
	s = strings.TrimSpace(s)
	for _, n := range formNames {
		if strings.EqualFold(s, n.display) || strings.EqualFold(s, n.wire) {
			return n.form, nil
		}
	}
	return FormFreeVerse, fmt.Errorf("%w: form %q", ErrUnknownOption, s)
}

func (f Form) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, f)
	}
	return []byte(f.String()), nil
}

func (f *Form) UnmarshalText(text []byte) error {
	v, err := ParseForm(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Tone は NARRATIVE モードでのみ使われる感情のトーンです。
type Tone int

const (
	ToneHopeful Tone = iota
	ToneMelancholy
	ToneWhimsical
	ToneMysterious
	ToneRomantic
)

var toneNames = []struct {
	tone    Tone
	display string
}{
	{ToneHopeful, "Hopeful"},
	{ToneMelancholy, "Melancholy"},
	{ToneWhimsical, "Whimsical"},
	{ToneMysterious, "Mysterious"},
	{ToneRomantic, "Romantic"},
}

// Tones は選択可能なトーンを表示順に返します。
func Tones() []Tone {
	out := make([]Tone, 0, len(toneNames))
	for _, t := range toneNames {
		out = append(out, t.tone)
	}
	return out
}

func (t Tone) String() string {
	for _, n := range toneNames {
		if n.tone == t {
			return n.display
		}
	}
	return fmt.Sprintf("Tone(%d)", int(t))
}

func (t Tone) Valid() bool {
	return t >= ToneHopeful && t <= ToneRomantic
}

// ParseTone は "Hopeful" や "HOPEFUL" のような名前を解釈します。
func ParseTone(s string) (Tone, error) {
	s = strings.TrimSpace(s)
	for _, n := range toneNames {
		if strings.EqualFold(s, n.display) {
			return n.tone, nil
		}
	}
	return ToneHopeful, fmt.Errorf("%w: tone %q", ErrUnknownOption, s)
}

func (t Tone) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, t)
	}
	return []byte(t.String()), nil
}

func (t *Tone) UnmarshalText(text []byte) error {
	v, err := ParseTone(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// PoemOptions はユーザーが選んだ詩のスタイル設定です。
// Form と Tone は常に値を持ちますが、意味を持つのはそれぞれ STYLE と NARRATIVE のときだけです。
type PoemOptions struct {
	Mode        Mode   `json:"mode"`
	Form        Form   `json:"form"`
	Tone        Tone   `json:"tone"`
	CustomTopic string `json:"customTopic"`
}

// DefaultPoemOptions は初期状態の設定 (BEST / Free Verse / Hopeful) を返します。
func DefaultPoemOptions() PoemOptions {
	return PoemOptions{
		Mode: ModeBest,
		Form: FormFreeVerse,
		Tone: ToneHopeful,
	}
}

// ImagePayload は base64 でエンコードされた画像データと MIME タイプです。
type ImagePayload struct {
	Data     string `json:"data"` // 標準 base64
	MimeType string `json:"mimeType"`
}
