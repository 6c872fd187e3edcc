package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_kana_practice/internal/engine"
)

func TestSegment_PartitionInvariant(t *testing.T) {
	lookup := newTestLookup()
	m := engine.Align(lookup, "大学生です", "だいがくせいです")
	displayLen := len([]rune(m.DisplayText))

	for pos := 0; pos < m.TotalInputLength; pos++ {
		seg := engine.Segment(m, pos)
		total := len([]rune(seg.CompletedPart)) + len([]rune(seg.CurrentChar)) + len([]rune(seg.RemainingPart))
		assert.Equal(t, displayLen, total, "pos=%d で分割が全文を復元しない", pos)
		assert.Equal(t, m.DisplayText, seg.CompletedPart+seg.CurrentChar+seg.RemainingPart, "pos=%d", pos)
	}
}

func TestSegment_MultiKanaKanjiHighlight(t *testing.T) {
	lookup := newTestLookup()
	// 学 → がく（2かな読みの単漢字）
	m := engine.Align(lookup, "学こう", "がくこう")
	require.Len(t, m.Mappings, 4)

	// 1かな目: 漢字全体が入力中
	seg := engine.Segment(m, 0)
	assert.Equal(t, "", seg.CompletedPart)
	assert.Equal(t, "学", seg.CurrentChar)
	assert.Equal(t, "こう", seg.RemainingPart)

	// 2かな目: まだ入力中のまま（途中で分割されない）
	seg = engine.Segment(m, 1)
	assert.Equal(t, "学", seg.CurrentChar)

	// 読みを打ち終えた次の位置: 漢字は完了部分に移る
	seg = engine.Segment(m, 2)
	assert.Equal(t, "学", seg.CompletedPart)
	assert.Equal(t, "こ", seg.CurrentChar)
	assert.Equal(t, "う", seg.RemainingPart)
}

func TestSegment_CompoundHighlight(t *testing.T) {
	lookup := newTestLookup()
	m := engine.Align(lookup, "大学生です", "だいがくせいです")

	// 熟語内でも表示位置単位で進む: 「がく」入力中は「学」が入力中
	seg := engine.Segment(m, 2)
	assert.Equal(t, "大", seg.CompletedPart)
	assert.Equal(t, "学", seg.CurrentChar)
	assert.Equal(t, "生です", seg.RemainingPart)
}

func TestSegment_Finished(t *testing.T) {
	lookup := newTestLookup()
	m := engine.Align(lookup, "木", "き")

	seg := engine.Segment(m, 1)
	assert.Equal(t, "木", seg.CompletedPart)
	assert.Empty(t, seg.CurrentChar)
	assert.Empty(t, seg.RemainingPart)
}

func TestSegment_NonKanjiPosition(t *testing.T) {
	lookup := newTestLookup()
	m := engine.Align(lookup, "こんにちは", "こんにちは")

	seg := engine.Segment(m, 2)
	assert.Equal(t, "こん", seg.CompletedPart)
	assert.Equal(t, "に", seg.CurrentChar)
	assert.Equal(t, "ちは", seg.RemainingPart)
}
