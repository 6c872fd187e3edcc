// internal/kana/sequential.go
package kana

import (
	"fmt"

	"go_kana_practice/internal/model"
)

// 逐次変換バリデータ。
// かな入力では清音を打ってから濁点・半濁点キーで目標のかなへ変化させる
// 打ち方が正当な途中経過になります（は→ば→ぱ）。小書き化（つ→っ）も
// 同じ仕組みで1段の変換として扱います。

// 濁点変換（清音 → 濁音）
var dakuten = map[rune]rune{
	'か': 'が', 'き': 'ぎ', 'く': 'ぐ', 'け': 'げ', 'こ': 'ご',
	'さ': 'ざ', 'し': 'じ', 'す': 'ず', 'せ': 'ぜ', 'そ': 'ぞ',
	'た': 'だ', 'ち': 'ぢ', 'つ': 'づ', 'て': 'で', 'と': 'ど',
	'は': 'ば', 'ひ': 'び', 'ふ': 'ぶ', 'へ': 'べ', 'ほ': 'ぼ',
	'う': 'ゔ',
}

// 半濁点変換（濁音 → 半濁音）。は行のみ存在します。
var handakuten = map[rune]rune{
	'ば': 'ぱ', 'び': 'ぴ', 'ぶ': 'ぷ', 'べ': 'ぺ', 'ぼ': 'ぽ',
}

// 小書き変換（通常形 → 小書き形）
var small = map[rune]rune{
	'あ': 'ぁ', 'い': 'ぃ', 'う': 'ぅ', 'え': 'ぇ', 'お': 'ぉ',
	'つ': 'っ', 'や': 'ゃ', 'ゆ': 'ゅ', 'よ': 'ょ', 'わ': 'ゎ',
}

// 逆引き（変化後 → 変化前）。初期化時に構築します。
var reverseStep map[rune]rune

func init() {
	reverseStep = make(map[rune]rune, len(dakuten)+len(handakuten)+len(small))
	for from, to := range dakuten {
		reverseStep[to] = from
	}
	for from, to := range handakuten {
		reverseStep[to] = from
	}
	for from, to := range small {
		reverseStep[to] = from
	}
}

// TransformChain は基底のかなから target までの変換列を返します。
// 例: ぱ → [は ば ぱ]、が → [か が]、き → [き]
func TransformChain(target rune) []rune {
	chain := []rune{target}
	cur := target
	for {
		prev, ok := reverseStep[cur]
		if !ok {
			break
		}
		chain = append([]rune{prev}, chain...)
		cur = prev
	}
	return chain
}

// SequentialValidator は部分入力が目標のかなへ合法的に変化し得るかを判定します
type SequentialValidator struct{}

func NewSequentialValidator() *SequentialValidator {
	return &SequentialValidator{}
}

// Check は部分入力バッファと目標のかな1文字を照合します。
//   - バッファが目標と一致 → 有効かつ完了
//   - バッファが変換列の途中段階 → 有効かつ継続可能（次に到達できるかなを添える）
//   - それ以外 → 無効
func (v *SequentialValidator) Check(partial string, target rune) model.SequentialResult {
	chain := TransformChain(target)
	path := make([]string, len(chain))
	for i, r := range chain {
		path[i] = string(r)
	}

	if partial == string(target) {
		return model.SequentialResult{
			IsValid:            true,
			IsComplete:         true,
			Confidence:         1.0,
			TransformationPath: path,
		}
	}

	// 途中段階かどうか（最後の要素=target は上で処理済み）
	for i := 0; i < len(chain)-1; i++ {
		if partial != string(chain[i]) {
			continue
		}
		next := chain[i+1]
		return model.SequentialResult{
			IsValid:            true,
			CanContinue:        true,
			Confidence:         float64(i+1) / float64(len(chain)),
			Hint:               fmt.Sprintf("「%s」は「%c」へ変化できます", partial, next),
			NextPossibleChars:  []string{string(next)},
			TransformationPath: path,
		}
	}

	return model.SequentialResult{
		Hint: fmt.Sprintf("「%c」に対して「%s」は無効な入力です", target, partial),
	}
}
