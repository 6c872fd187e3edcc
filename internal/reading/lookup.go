// internal/reading/lookup.go
package reading

import (
	"sync"

	"go_kana_practice/internal/kana"
)

// Lookup は漢字1文字または熟語の読みを引くためのインターフェースです。
// エンジンは読みが引けない場合でも1対1フォールバックで継続するため、
// 実装はエラーを返さず、読みの有無だけを伝えます。
type Lookup interface {
	HasReading(unit string) bool
	ReadingOf(unit string) (string, bool)
	IsKanji(r rune) bool
}

// Table はメモリ上の読みテーブルです。練習テキストの登録時に単語と
// 読みを流し込んで使います。複数ゴルーチンから参照されるためロックを持ちます。
type Table struct {
	mu       sync.RWMutex
	readings map[string]string
}

func NewTable() *Table {
	return &Table{readings: make(map[string]string)}
}

// Register は単語（漢字1文字または熟語）と読みを登録します。
// 読みはひらがなに正規化して保持します。
func (t *Table) Register(word, reading string) {
	if word == "" || reading == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readings[word] = kana.KatakanaToHiragana(reading)
}

func (t *Table) HasReading(unit string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.readings[unit]
	return ok
}

func (t *Table) ReadingOf(unit string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	r, ok := t.readings[unit]
	return r, ok
}

func (t *Table) IsKanji(r rune) bool {
	return kana.IsKanji(r)
}

// Chain は複数の Lookup を順に試す合成です。先に登録テーブル、
// 最後に形態素解析フォールバックという構成を想定しています。
type Chain struct {
	lookups []Lookup
}

func NewChain(lookups ...Lookup) *Chain {
	return &Chain{lookups: lookups}
}

func (c *Chain) HasReading(unit string) bool {
	for _, l := range c.lookups {
		if l.HasReading(unit) {
			return true
		}
	}
	return false
}

func (c *Chain) ReadingOf(unit string) (string, bool) {
	for _, l := range c.lookups {
		if r, ok := l.ReadingOf(unit); ok {
			return r, ok
		}
	}
	return "", false
}

func (c *Chain) IsKanji(r rune) bool {
	return kana.IsKanji(r)
}

// NewSeededTable はデモとテストで使う最小限の読みテーブルを返します。
// 実運用ではテキスト登録時の Register と形態素解析フォールバックが主役です。
func NewSeededTable() *Table {
	t := NewTable()
	seed := map[string]string{
		"木":   "き",
		"大":   "だい",
		"学":   "がく",
		"生":   "せい",
		"大学":  "だいがく",
		"大学生": "だいがくせい",
		"日":   "にち",
		"本":   "ほん",
		"日本":  "にほん",
		"明日":  "あした",
		"天気":  "てんき",
		"花":   "はな",
		"火":   "ひ",
	}
	for w, r := range seed {
		t.Register(w, r)
	}
	return t
}
