// internal/engine/segmenter.go
package engine

import (
	"go_kana_practice/internal/model"
)

// Segment は表示テキストをカーソル位置に応じて
// 完了部分／入力中の1文字／残り部分 に分割します。
//
// 複数かな読みの漢字は、読みの最後のかなを打ち終わるまで1つの単位として
// 「入力中」に留まり、途中で分割されることはありません。
func Segment(mapping *model.TextMapping, inputPosition int) model.Segments {
	entry := mapping.MappingAt(inputPosition)
	if entry == nil {
		// 入力終了: 全文が完了部分になる
		return model.Segments{CompletedPart: mapping.DisplayText}
	}

	display := []rune(mapping.DisplayText)
	dp := entry.DisplayIndex
	if dp >= len(display) {
		return model.Segments{CompletedPart: mapping.DisplayText}
	}

	if entry.IsKanji {
		// この表示位置を共有するエントリに未入力のかなが残っている間は
		// 漢字全体を「入力中」として扱う
		inProgress := false
		for _, m := range mapping.Mappings {
			if m.DisplayIndex == dp && m.InputIndex >= inputPosition {
				inProgress = true
				break
			}
		}
		if !inProgress {
			return model.Segments{
				CompletedPart: string(display[:dp+1]),
				RemainingPart: string(display[dp+1:]),
			}
		}
	}

	return model.Segments{
		CompletedPart: string(display[:dp]),
		CurrentChar:   string(display[dp]),
		RemainingPart: string(display[dp+1:]),
	}
}
