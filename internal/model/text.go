// internal/model/text.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeText は練習用テキスト（表示文と正解の読み）を表します
type PracticeText struct {
	TextID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"text_id"`
	Display     string         `gorm:"not null" json:"display"`           // 表示文（漢字かな交じり）
	Reading     string         `gorm:"not null" json:"reading"`           // 正解の読み（ひらがな）
	AltReadings string         `json:"-"`                                 // 別読み（カンマ区切りで保持）
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (PracticeText) TableName() string {
	return "practice_texts"
}

// AltReadingList はカンマ区切りの別読みをスライスに展開します
func (t *PracticeText) AltReadingList() []string {
	if t.AltReadings == "" {
		return nil
	}
	parts := strings.Split(t.AltReadings, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinAltReadings はスライスをDB保存用のカンマ区切りに畳みます
func JoinAltReadings(readings []string) string {
	out := make([]string, 0, len(readings))
	for _, r := range readings {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return strings.Join(out, ",")
}

// テキスト作成リクエストDTO
type PostTextRequest struct {
	Display     string   `json:"display" validate:"required,max=200"`
	Reading     string   `json:"reading" validate:"required,max=400"`
	AltReadings []string `json:"alt_readings,omitempty" validate:"omitempty,dive,min=1"`
}

// テキスト更新（全体）リクエストDTO
type PutTextRequest struct {
	Display     string   `json:"display" validate:"required,max=200"`
	Reading     string   `json:"reading" validate:"required,max=400"`
	AltReadings []string `json:"alt_readings,omitempty" validate:"omitempty,dive,min=1"`
}

// PracticeTextResponse はAPIレスポンス用のDTOです（別読みをスライスで返す）
type PracticeTextResponse struct {
	TextID      uuid.UUID `json:"text_id"`
	Display     string    `json:"display"`
	Reading     string    `json:"reading"`
	AltReadings []string  `json:"alt_readings,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPracticeTextResponse(t *PracticeText) *PracticeTextResponse {
	return &PracticeTextResponse{
		TextID:      t.TextID,
		Display:     t.Display,
		Reading:     t.Reading,
		AltReadings: t.AltReadingList(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
