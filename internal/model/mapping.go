// internal/model/mapping.go
package model

// CharacterMapping は入力テキストのかな1文字分の対応情報です。
// InputIndex が主キーで、マッピング列全体で 0..TotalInputLength-1 の
// 連続した値を取ります。複数かな読みの漢字では、その読みの各かなが
// 同じ DisplayIndex と KanjiWord を共有します。
type CharacterMapping struct {
	DisplayIndex int    `json:"display_index"` // 表示テキスト内の文字位置（rune単位）
	InputIndex   int    `json:"input_index"`   // 入力テキスト内の位置（rune単位・一意）
	DisplayChar  string `json:"display_char"`
	InputChar    string `json:"input_char"`
	IsKanji      bool   `json:"is_kanji"`
	// KanjiWord はこのかなが帰属する熟語（複数文字の場合あり）
	KanjiWord string `json:"kanji_word,omitempty"`
	// ReadingVariations はこの入力位置で正解となる別読みのかな
	ReadingVariations []string `json:"reading_variations,omitempty"`
}

// TextMapping は表示テキストと入力テキストの対応付け結果です。
// 練習開始時に一度だけ構築され、以降は読み取り専用として扱います。
type TextMapping struct {
	DisplayText      string             `json:"display_text"`
	InputText        string             `json:"input_text"`
	Mappings         []CharacterMapping `json:"mappings"`
	TotalInputLength int                `json:"total_input_length"`
}

// MappingAt は指定の入力位置に対応するマッピングを返します。
// 範囲外（入力終了後）の場合は nil を返します。
func (m *TextMapping) MappingAt(inputPosition int) *CharacterMapping {
	if m == nil || inputPosition < 0 || inputPosition >= len(m.Mappings) {
		return nil
	}
	return &m.Mappings[inputPosition]
}
