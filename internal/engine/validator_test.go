package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_kana_practice/internal/engine"
	"go_kana_practice/internal/kana"
	"go_kana_practice/internal/reading"
)

func TestValidate_TerminalPosition(t *testing.T) {
	lookup := newTestLookup()
	variations := reading.NewVariationTable()
	seq := kana.NewSequentialValidator()
	m := engine.Align(lookup, "木", "き")

	res := engine.Validate(m, variations, seq, "き", 1)
	assert.False(t, res.IsValid)
	assert.False(t, res.IsComplete)
	assert.False(t, res.CanContinue)
	assert.Empty(t, res.PossibleChars)
}

func TestValidate_ExactMatch(t *testing.T) {
	lookup := newTestLookup()
	variations := reading.NewVariationTable()
	seq := kana.NewSequentialValidator()
	m := engine.Align(lookup, "木", "き")

	res := engine.Validate(m, variations, seq, "き", 0)
	assert.True(t, res.IsValid)
	assert.True(t, res.IsComplete)
	assert.False(t, res.CanContinue)
	assert.Contains(t, res.PossibleChars, "き")

	// 純粋関数なので同じ入力に対して結果は変わらない
	again := engine.Validate(m, variations, seq, "き", 0)
	assert.Equal(t, res, again)
}

func TestValidate_SequentialTolerance(t *testing.T) {
	lookup := newTestLookup()
	variations := reading.NewVariationTable()
	seq := kana.NewSequentialValidator()
	// かなのみの対応: 目標は「ば」
	m := engine.Align(lookup, "ばら", "ばら")

	tests := []struct {
		name            string
		input           string
		wantValid       bool
		wantComplete    bool
		wantCanContinue bool
	}{
		{name: "正常系: 清音は濁音への途中経過", input: "は", wantValid: true, wantCanContinue: true},
		{name: "正常系: 完全一致", input: "ば", wantValid: true, wantComplete: true},
		{name: "異常系: 変換列に無いかな", input: "か"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := engine.Validate(m, variations, seq, tc.input, 0)
			assert.Equal(t, tc.wantValid, res.IsValid)
			assert.Equal(t, tc.wantComplete, res.IsComplete)
			assert.Equal(t, tc.wantCanContinue, res.CanContinue)
		})
	}
}

func TestValidate_TransformationPathInPossibleChars(t *testing.T) {
	lookup := newTestLookup()
	variations := reading.NewVariationTable()
	seq := kana.NewSequentialValidator()
	m := engine.Align(lookup, "ぱん", "ぱん")

	// 3段変換（は→ば→ぱ）の場合は全段階が候補に含まれる
	res := engine.Validate(m, variations, seq, "は", 0)
	assert.True(t, res.IsValid)
	assert.True(t, res.CanContinue)
	assert.Contains(t, res.PossibleChars, "は")
	assert.Contains(t, res.PossibleChars, "ば")
	assert.Contains(t, res.PossibleChars, "ぱ")
}

func TestValidate_AlternateReadings(t *testing.T) {
	lookup := reading.NewTable()
	lookup.Register("行", "こう")
	variations := reading.NewVariationTable()
	variations.RegisterAlternates("行", "こう", "ぎょう")
	seq := kana.NewSequentialValidator()

	m := engine.Align(lookup, "行", "こう")
	require.Len(t, m.Mappings, 2)

	// 1文字目: こ と ぎ の両方が正解候補
	res := engine.Validate(m, variations, seq, "ぎ", 0)
	assert.True(t, res.IsValid)
	assert.Contains(t, res.PossibleChars, "こ")
	assert.Contains(t, res.PossibleChars, "ぎ")

	// 2文字目: う と ょ
	res = engine.Validate(m, variations, seq, "ょ", 1)
	assert.True(t, res.IsValid)
	assert.Contains(t, res.PossibleChars, "う")
	assert.Contains(t, res.PossibleChars, "ょ")

	// 候補は重複しない
	seen := map[string]int{}
	for _, c := range res.PossibleChars {
		seen[c]++
		assert.Equal(t, 1, seen[c], "重複した候補: %s", c)
	}
}

func TestValidate_AttachedVariationsMerged(t *testing.T) {
	lookup := newTestLookup()
	seq := kana.NewSequentialValidator()
	base := engine.Align(lookup, "明日", "あした")
	m := engine.AttachVariants(base, []string{"あすー"})

	res := engine.Validate(m, reading.NewVariationTable(), seq, "す", 1)
	assert.True(t, res.IsValid, "付与された別読みの文字も正解になる")
	assert.Contains(t, res.PossibleChars, "し")
	assert.Contains(t, res.PossibleChars, "す")
}

func TestValidate_ObserverReceivesDiagnostics(t *testing.T) {
	lookup := newTestLookup()
	seq := kana.NewSequentialValidator()
	m := engine.Align(lookup, "木", "き")

	var messages []string
	obs := func(msg string, args ...any) {
		messages = append(messages, msg)
	}
	engine.Validate(m, reading.NewVariationTable(), seq, "き", 0, obs)
	assert.NotEmpty(t, messages)
}
