// internal/reading/variation.go
package reading

import (
	"sync"

	"go_kana_practice/internal/kana"
)

// VariationSource は別読みの供給元です。
//   - VariantsFor: 表示文全体に対する並行な別読み（基準の読みと同じ
//     マッピング構造を持つ読みの列）
//   - AlternateReadingsOf: 熟語単位の別読み
type VariationSource interface {
	VariantsFor(displayText, baseInput string) []string
	AlternateReadingsOf(word string) []string
}

// VariationTable はメモリ上の別読みレジストリです。
// 練習テキストの登録時に流し込まれるほか、よく使う語を初期登録します。
type VariationTable struct {
	mu         sync.RWMutex
	variants   map[string][]string // 表示文 → 全文の別読み
	alternates map[string][]string // 熟語 → 別読み
}

func NewVariationTable() *VariationTable {
	return &VariationTable{
		variants:   make(map[string][]string),
		alternates: make(map[string][]string),
	}
}

// RegisterVariant は表示文に対する全文の別読みを登録します
func (v *VariationTable) RegisterVariant(displayText, fullReading string) {
	if displayText == "" || fullReading == "" {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.variants[displayText] = append(v.variants[displayText], kana.KatakanaToHiragana(fullReading))
}

// RegisterAlternates は熟語の別読みを登録します
func (v *VariationTable) RegisterAlternates(word string, readings ...string) {
	if word == "" || len(readings) == 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range readings {
		if r == "" {
			continue
		}
		v.alternates[word] = append(v.alternates[word], kana.KatakanaToHiragana(r))
	}
}

// VariantsFor は表示文に登録された別読みのうち、基準の読みと異なる
// ものを返します
func (v *VariationTable) VariantsFor(displayText, baseInput string) []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	var out []string
	for _, r := range v.variants[displayText] {
		if r != baseInput {
			out = append(out, r)
		}
	}
	return out
}

func (v *VariationTable) AlternateReadingsOf(word string) []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	rs := v.alternates[word]
	out := make([]string, len(rs))
	copy(out, rs)
	return out
}

// NewSeededVariationTable は代表的な複数読みの語を初期登録したテーブルを返します
func NewSeededVariationTable() *VariationTable {
	v := NewVariationTable()
	v.RegisterAlternates("明日", "あした", "あす")
	v.RegisterAlternates("日本", "にほん", "にっぽん")
	v.RegisterAlternates("私", "わたし", "わたくし")
	v.RegisterAlternates("行", "こう", "ぎょう")
	return v
}
