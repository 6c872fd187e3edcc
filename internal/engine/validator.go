// internal/engine/validator.go
package engine

import (
	"log/slog"

	"go_kana_practice/internal/model"
)

// AlternateReadings は熟語単位の別読みの供給元です（internal/reading が実装）
type AlternateReadings interface {
	AlternateReadingsOf(word string) []string
}

// SequentialChecker は段階変換（清音→濁音→半濁音）の判定器です
// （internal/kana が実装）
type SequentialChecker interface {
	Check(partial string, target rune) model.SequentialResult
}

// Observer は検証内部の診断情報を受け取るコールバックです。
// 検証結果の契約には含まれません。
type Observer func(msg string, args ...any)

// SlogObserver は slog.Logger のデバッグ出力に診断を流す Observer を返します
func SlogObserver(logger *slog.Logger) Observer {
	return func(msg string, args ...any) {
		logger.Debug(msg, args...)
	}
}

// Validate は「この部分入力はこの位置で正解か」を判定します。
// mapping・カーソル・入力のみに依存する純粋関数で、状態を持ちません。
// カーソル（inputPosition）の管理は呼び出し側の責務です。
func Validate(mapping *model.TextMapping, readings AlternateReadings, seq SequentialChecker, userInput string, inputPosition int, obs ...Observer) model.ValidationResult {
	observe := func(msg string, args ...any) {
		for _, o := range obs {
			o(msg, args...)
		}
	}

	// 入力終了後は検証対象なし（エラーではなく定義済みの終端状態）
	if inputPosition >= mapping.TotalInputLength {
		return model.ValidationResult{PossibleChars: []string{}}
	}
	target := mapping.MappingAt(inputPosition)
	if target == nil {
		// 読みデータ不足でマッピングが入力長より短い場合もここに落ちる
		return model.ValidationResult{PossibleChars: []string{}}
	}

	possible := []string{target.InputChar}

	// 熟語に帰属する漢字なら、その熟語の別読みから同じ位置の文字を拾う。
	// 位置は熟語全体ではなく「この漢字の読みブロック内」での序数。
	if target.IsKanji && target.KanjiWord != "" && readings != nil {
		rank := 0
		for _, m := range mapping.Mappings {
			if m.DisplayIndex == target.DisplayIndex && m.InputIndex < target.InputIndex {
				rank++
			}
		}
		for _, alt := range readings.AlternateReadingsOf(target.KanjiWord) {
			altRunes := []rune(alt)
			if rank < len(altRunes) {
				possible = append(possible, string(altRunes[rank]))
			}
		}
	}

	// 構築時に付与された別読み（全文 variant 由来）を合流
	possible = append(possible, target.ReadingVariations...)
	possible = dedup(possible)

	targetRune := []rune(target.InputChar)[0]
	seqResult := seq.Check(userInput, targetRune)
	observe("sequential check",
		"input", userInput,
		"target", target.InputChar,
		"position", inputPosition,
		"seq_valid", seqResult.IsValid,
		"seq_complete", seqResult.IsComplete,
	)

	isValid := contains(possible, userInput) || seqResult.IsValid
	isComplete := userInput == target.InputChar || (seqResult.IsComplete && seqResult.IsValid)
	canContinue := (contains(possible, userInput) && !isComplete) ||
		(seqResult.IsValid && seqResult.CanContinue)

	// 返却する候補には、次の1打鍵で到達できるかなと、3段以上の変換列の
	// 全段階も含める（クライアントが「次に押すキー」を提示できるように）
	possible = append(possible, seqResult.NextPossibleChars...)
	if len(seqResult.TransformationPath) > 2 {
		possible = append(possible, seqResult.TransformationPath...)
	}
	possible = dedup(possible)

	return model.ValidationResult{
		IsValid:       isValid,
		IsComplete:    isComplete,
		CanContinue:   canContinue,
		PossibleChars: possible,
	}
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func dedup(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	out := ss[:0]
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
