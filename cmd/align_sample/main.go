// 表示文と読みの対応付けをコマンドラインから試すためのサンプルです。
//
//	go run ./cmd/align_sample 大学生です だいがくせいです
//
// 引数なしの場合は組み込みのサンプル文を使います。
package main

import (
	"fmt"
	"log"
	"os"

	"go_kana_practice/internal/engine"
	"go_kana_practice/internal/kana"
	"go_kana_practice/internal/reading"
)

func main() {
	display := "大学生です"
	input := "だいがくせいです"
	if len(os.Args) == 3 {
		display = os.Args[1]
		input = os.Args[2]
	} else if len(os.Args) != 1 {
		log.Fatalf("usage: %s [display reading]", os.Args[0])
	}

	// --- 1. 読みテーブルの準備 ---
	table := reading.NewSeededTable()
	table.Register(display, input)
	variations := reading.NewSeededVariationTable()

	// --- 2. 対応付けの実行 ---
	fmt.Printf("--- Aligning %q / %q ---\n", display, input)
	mapping := engine.AlignWithVariants(table, variations, display, input)
	fmt.Printf("total input length: %d\n", mapping.TotalInputLength)
	for i, m := range mapping.Mappings {
		fmt.Printf("  [%d] display[%d]=%s input[%d]=%s kanji=%t", i, m.DisplayIndex, m.DisplayChar, m.InputIndex, m.InputChar, m.IsKanji)
		if m.KanjiWord != "" {
			fmt.Printf(" word=%s", m.KanjiWord)
		}
		if len(m.ReadingVariations) > 0 {
			fmt.Printf(" variations=%v", m.ReadingVariations)
		}
		fmt.Println()
	}

	// --- 3. 正解読みをそのまま打った場合のシミュレーション ---
	fmt.Println("\n--- Simulating keystrokes ---")
	seq := kana.NewSequentialValidator()
	position := 0
	for _, ch := range input {
		result := engine.Validate(mapping, variations, seq, string(ch), position)
		segments := engine.Segment(mapping, position)
		fmt.Printf("  pos=%d key=%s valid=%t complete=%t segments=[%s|%s|%s]\n",
			position, string(ch), result.IsValid, result.IsComplete,
			segments.CompletedPart, segments.CurrentChar, segments.RemainingPart)
		if result.IsComplete {
			position++
		}
	}
	fmt.Printf("finished: %t\n", position >= mapping.TotalInputLength)
}
