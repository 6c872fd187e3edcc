// internal/reading/kagome.go
package reading

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"go_kana_practice/internal/kana"
)

// KagomeLookup は形態素解析器（kagome + IPA辞書）を使った読み引きです。
// 登録テーブルに無い単語のフォールバックとして Chain の末尾に置きます。
// 解析器の読みはカタカナなので、ひらがなに変換して返します。
type KagomeLookup struct {
	tok *tokenizer.Tokenizer
}

func NewKagomeLookup() (*KagomeLookup, error) {
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeLookup{tok: tok}, nil
}

func (k *KagomeLookup) HasReading(unit string) bool {
	_, ok := k.ReadingOf(unit)
	return ok
}

// ReadingOf は unit を形態素解析し、全トークンの読みを連結して返します。
// 一つでも読みが取れないトークンがあれば「読みなし」を返します。
func (k *KagomeLookup) ReadingOf(unit string) (string, bool) {
	if unit == "" {
		return "", false
	}
	tokens := k.tok.Tokenize(unit)
	if len(tokens) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, t := range tokens {
		r, ok := t.Reading()
		if !ok || r == "" || r == "*" {
			return "", false
		}
		b.WriteString(kana.KatakanaToHiragana(r))
	}
	return b.String(), true
}

func (k *KagomeLookup) IsKanji(r rune) bool {
	return kana.IsKanji(r)
}
