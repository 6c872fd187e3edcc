// internal/engine/mapper.go
package engine

import (
	"go_kana_practice/internal/model"
)

// 表示テキストと入力テキスト（ひらがな）の文字対応を構築します。
// 読みデータが欠けていても例外は出さず、1対1のフォールバックに
// 退化して必ずマッピングを返します。

// maxCompoundLength は熟語探索の最大窓長です
const maxCompoundLength = 10

// ReadingLookup は読み引きの境界インターフェースです（internal/reading が実装）
type ReadingLookup interface {
	HasReading(unit string) bool
	ReadingOf(unit string) (string, bool)
	IsKanji(r rune) bool
}

// Align は表示テキストと入力テキストの対応付けを構築します。
//
// 表示位置ごとに、まず長い窓から熟語の読みを探索し（最長一致が常に勝つ）、
// 熟語が無ければ単漢字の読み、それも無ければ1対1の素通しで対応させます。
// どちらかのカーソルが末尾へ達した時点で終了し、余った文字は黙って
// 捨てられます（呼び出し側が読みデータの完全性を事前に検証する契約）。
func Align(lookup ReadingLookup, displayText, inputText string) *model.TextMapping {
	display := []rune(displayText)
	input := []rune(inputText)

	var mappings []model.CharacterMapping
	di, ii := 0, 0

	for di < len(display) && ii < len(input) {
		if word, rd, ok := probeCompound(lookup, display, input, di, ii); ok {
			di, ii = emitCompound(lookup, &mappings, display, input, di, ii, word, rd)
			continue
		}

		ch := display[di]
		if lookup.IsKanji(ch) {
			if rd, ok := lookup.ReadingOf(string(ch)); ok {
				for _, kr := range []rune(rd) {
					if ii >= len(input) {
						break // 入力が尽きたら切り詰める
					}
					mappings = append(mappings, model.CharacterMapping{
						DisplayIndex: di,
						InputIndex:   ii,
						DisplayChar:  string(ch),
						InputChar:    string(kr),
						IsKanji:      true,
						KanjiWord:    string(ch),
					})
					ii++
				}
				di++
				continue
			}
		}

		// 読み不明の漢字・かな・記号は1対1の素通し
		mappings = append(mappings, model.CharacterMapping{
			DisplayIndex: di,
			InputIndex:   ii,
			DisplayChar:  string(ch),
			InputChar:    string(input[ii]),
			IsKanji:      lookup.IsKanji(ch),
		})
		di++
		ii++
	}

	// TotalInputLength は入力テキスト長。読みデータが不完全な場合は
	// マッピング数の方が短くなり得る（末尾は黙って切り捨てられる）。
	return &model.TextMapping{
		DisplayText:      displayText,
		InputText:        inputText,
		Mappings:         mappings,
		TotalInputLength: len(input),
	}
}

// probeCompound は現在位置から長い窓順（min(10, 残り)〜2）で熟語を探します。
// 読みが登録されていて、かつ入力カーソル位置がその読みで始まる場合のみ
// 一致とみなします。最初に成功した（＝最長の）候補で確定します。
func probeCompound(lookup ReadingLookup, display, input []rune, di, ii int) (word, rd string, ok bool) {
	maxLen := maxCompoundLength
	if rest := len(display) - di; rest < maxLen {
		maxLen = rest
	}
	for l := maxLen; l >= 2; l-- {
		cand := string(display[di : di+l])
		r, found := lookup.ReadingOf(cand)
		if !found {
			continue
		}
		if !hasRunePrefix(input[ii:], []rune(r)) {
			continue
		}
		return cand, r, true
	}
	return "", "", false
}

// emitCompound は熟語一致分のマッピングを出力し、進んだカーソルを返します。
//
// 熟語内の漢字1文字が受け持つかな数は、単漢字の読みが引ければその長さ、
// 引けなければ残りの読みを残りの文字数で均等割りした値を使います。
// 均等割りは近似であり、変則的な熟語では読みの境界がずれることがあります。
func emitCompound(lookup ReadingLookup, mappings *[]model.CharacterMapping, display, input []rune, di, ii int, word, rd string) (int, int) {
	wordRunes := []rune(word)
	readingRunes := []rune(rd)
	rIdx := 0

	for w := 0; w < len(wordRunes); w++ {
		if rIdx >= len(readingRunes) {
			break
		}
		ch := wordRunes[w]

		if !lookup.IsKanji(ch) {
			if ii >= len(input) {
				break
			}
			*mappings = append(*mappings, model.CharacterMapping{
				DisplayIndex: di + w,
				InputIndex:   ii,
				DisplayChar:  string(ch),
				InputChar:    string(readingRunes[rIdx]),
				IsKanji:      false,
				KanjiWord:    word,
			})
			ii++
			rIdx++
			continue
		}

		n := kanaCountFor(lookup, ch, len(readingRunes)-rIdx, len(wordRunes)-w)
		if n > len(readingRunes)-rIdx {
			n = len(readingRunes) - rIdx
		}
		for k := 0; k < n; k++ {
			if ii >= len(input) {
				return di + len(wordRunes), ii
			}
			*mappings = append(*mappings, model.CharacterMapping{
				DisplayIndex: di + w,
				InputIndex:   ii,
				DisplayChar:  string(ch),
				InputChar:    string(readingRunes[rIdx]),
				IsKanji:      true,
				KanjiWord:    word,
			})
			ii++
			rIdx++
		}
	}
	return di + len(wordRunes), ii
}

// kanaCountFor は熟語内の漢字1文字が受け持つかな数を決めます
func kanaCountFor(lookup ReadingLookup, ch rune, remainingReading, remainingChars int) int {
	if single, ok := lookup.ReadingOf(string(ch)); ok {
		return len([]rune(single))
	}
	return remainingReading / remainingChars
}

func hasRunePrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

// AttachVariants は構築済みマッピングに別読みを付与した新しいマッピングを
// 返します。元のマッピングは変更しません。各 variant は基準の読みと同じ
// 序数構造を持つ前提で、漢字由来のエントリにのみ同じ序数位置の文字を
// 付与します（その位置まで届かない短い variant は飛ばす）。
// InputIndex / DisplayIndex の割り当てには一切手を触れません。
func AttachVariants(mapping *model.TextMapping, variants []string) *model.TextMapping {
	out := &model.TextMapping{
		DisplayText:      mapping.DisplayText,
		InputText:        mapping.InputText,
		Mappings:         make([]model.CharacterMapping, len(mapping.Mappings)),
		TotalInputLength: mapping.TotalInputLength,
	}
	copy(out.Mappings, mapping.Mappings)

	if len(variants) == 0 {
		return out
	}

	variantRunes := make([][]rune, len(variants))
	for i, v := range variants {
		variantRunes[i] = []rune(v)
	}

	for i := range out.Mappings {
		m := &out.Mappings[i]
		if !m.IsKanji {
			continue
		}
		var vars []string
		for _, vr := range variantRunes {
			if i >= len(vr) {
				continue
			}
			alt := string(vr[i])
			if alt == m.InputChar || contains(vars, alt) {
				continue
			}
			vars = append(vars, alt)
		}
		m.ReadingVariations = vars
	}
	return out
}

// VariationLookup は表示文全体の別読みの供給元です（internal/reading が実装）
type VariationLookup interface {
	VariantsFor(displayText, baseInput string) []string
}

// AlignWithVariants は Align と AttachVariants を合成した便宜関数です
func AlignWithVariants(lookup ReadingLookup, variations VariationLookup, displayText, inputText string) *model.TextMapping {
	base := Align(lookup, displayText, inputText)
	variants := variations.VariantsFor(displayText, inputText)
	return AttachVariants(base, variants)
}
