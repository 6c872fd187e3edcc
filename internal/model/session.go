// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PracticeSession は進行中の練習セッションです。
// マッピングは構築後は読み取り専用で、カーソル（Position）だけが
// キーストロークごとに進みます。永続化はしません（メモリ上のみ）。
type PracticeSession struct {
	SessionID uuid.UUID    `json:"session_id"`
	TextID    *uuid.UUID   `json:"text_id,omitempty"` // カタログ由来の場合のみ
	Mapping   *TextMapping `json:"-"`
	Position  int          `json:"position"`
	StartedAt time.Time    `json:"started_at"`
}

// Finished は入力が最後まで到達したかを返します
func (s *PracticeSession) Finished() bool {
	return s.Mapping == nil || s.Position >= s.Mapping.TotalInputLength
}

// 練習開始リクエストDTO。カタログのテキストIDか、表示文＋読みの
// 直接指定のどちらかを渡します。
type StartPracticeRequest struct {
	TextID  *uuid.UUID `json:"text_id,omitempty"`
	Display string     `json:"display,omitempty" validate:"omitempty,max=200"`
	Reading string     `json:"reading,omitempty" validate:"omitempty,max=400"`
}

// キーストロークリクエストDTO
type KeystrokeRequest struct {
	Input string `json:"input" validate:"required,max=8"`
}

// SessionView はクライアントに返すセッションの現在状態です
type SessionView struct {
	SessionID        uuid.UUID `json:"session_id"`
	Display          string    `json:"display"`
	Position         int       `json:"position"`
	TotalInputLength int       `json:"total_input_length"`
	Finished         bool      `json:"finished"`
	Segments         Segments  `json:"segments"`
}

// StartPracticeResponse はセッション作成結果とAPIトークンを返します
type StartPracticeResponse struct {
	Session SessionView `json:"session"`
	Token   string      `json:"token"`
}

// KeystrokeResponse はキーストローク1回分の判定結果です
type KeystrokeResponse struct {
	Result   ValidationResult `json:"result"`
	Position int              `json:"position"`
	Finished bool             `json:"finished"`
	Segments Segments         `json:"segments"`
}
