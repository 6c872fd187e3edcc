// internal/model/validation.go
package model

// ValidationResult はキーストローク1回分の検証結果です。
// エンジンの純粋関数が毎回生成する一時的な値で、状態は持ちません。
type ValidationResult struct {
	// IsValid は入力がこの位置の正解（別読み・変換途中を含む）であるか
	IsValid bool `json:"is_valid"`
	// IsComplete はこの位置のかなが完全に入力し終わったか
	IsComplete bool `json:"is_complete"`
	// CanContinue は現在の入力が正解へ続く途中経過であるか
	CanContinue bool `json:"can_continue"`
	// PossibleChars はこの位置で正解となり得るかなの集合（重複除去済み）
	PossibleChars []string `json:"possible_chars"`
}

// SequentialResult は逐次変換バリデータ（濁点・半濁点などの段階入力）の判定結果です。
type SequentialResult struct {
	IsValid     bool    `json:"is_valid"`
	IsComplete  bool    `json:"is_complete"`
	CanContinue bool    `json:"can_continue"`
	Confidence  float64 `json:"confidence"`
	Hint        string  `json:"hint,omitempty"`
	// NextPossibleChars は次の1打鍵で到達できるかな
	NextPossibleChars []string `json:"next_possible_chars,omitempty"`
	// TransformationPath は基底かなから目標かなまでの変換列
	TransformationPath []string `json:"transformation_path,omitempty"`
}

// Segments は表示テキストを 完了／入力中／未入力 に分割した結果です。
// CurrentChar が空でない限り Completed + Current + Remaining が
// 表示テキスト全体を復元します。
type Segments struct {
	CompletedPart string `json:"completed_part"`
	CurrentChar   string `json:"current_char"`
	RemainingPart string `json:"remaining_part"`
}
