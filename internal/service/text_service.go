// internal/service/text_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_kana_practice/internal/model"
	"go_kana_practice/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TextService interface {
	PostText(ctx context.Context, req *model.PostTextRequest) (*model.PracticeText, error)
	GetText(ctx context.Context, textID uuid.UUID) (*model.PracticeText, error)
	GetTexts(ctx context.Context) ([]*model.PracticeText, error)
	PutText(ctx context.Context, textID uuid.UUID, req *model.PutTextRequest) (*model.PracticeText, error)
	DeleteText(ctx context.Context, textID uuid.UUID) error
}

type textService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	textRepo repository.TextRepository
	logger   *slog.Logger
}

func NewTextService(db *gorm.DB, textRepo repository.TextRepository, logger *slog.Logger) TextService {
	if logger == nil {
		logger = slog.Default()
	}
	return &textService{
		db:       db,
		textRepo: textRepo,
		logger:   logger,
	}
}

func (s *textService) PostText(ctx context.Context, req *model.PostTextRequest) (*model.PracticeText, error) {
	if req.Display == "" || req.Reading == "" {
		return nil, model.ErrInvalidInput
	}

	var created *model.PracticeText

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 重複チェック
		exists, err := s.textRepo.CheckDisplayExists(ctx, tx, req.Display, nil)
		if err != nil {
			s.logger.Error("Error checking display existence in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		if exists {
			return model.ErrConflict
		}

		// 2. テキストを作成
		text := &model.PracticeText{
			TextID:      uuid.New(),
			Display:     req.Display,
			Reading:     req.Reading,
			AltReadings: model.JoinAltReadings(req.AltReadings),
		}
		if err := s.textRepo.Create(ctx, tx, text); err != nil {
			s.logger.Error("Error creating practice text in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		created = text
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PostText", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return created, nil
}

func (s *textService) GetText(ctx context.Context, textID uuid.UUID) (*model.PracticeText, error) {
	text, err := s.textRepo.FindByID(ctx, s.db, textID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return text, nil
}

func (s *textService) GetTexts(ctx context.Context) ([]*model.PracticeText, error) {
	texts, err := s.textRepo.FindAll(ctx, s.db)
	if err != nil {
		s.logger.Error("Error listing practice texts", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}
	return texts, nil
}

func (s *textService) PutText(ctx context.Context, textID uuid.UUID, req *model.PutTextRequest) (*model.PracticeText, error) {
	var updated *model.PracticeText

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		text, err := s.textRepo.FindByID(ctx, tx, textID)
		if err != nil {
			return err // model.ErrNotFound or model.ErrInternalServer
		}

		// 2. 更新内容の準備と重複チェック
		updates := make(map[string]interface{})
		if req.Display != text.Display {
			exists, err := s.textRepo.CheckDisplayExists(ctx, tx, req.Display, &textID)
			if err != nil {
				s.logger.Error("Error checking display existence during update", slog.Any("error", err))
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
			updates["Display"] = req.Display
		}
		if req.Reading != text.Reading {
			updates["Reading"] = req.Reading
		}
		if alt := model.JoinAltReadings(req.AltReadings); alt != text.AltReadings {
			updates["AltReadings"] = alt
		}

		// 3. 更新実行 (更新内容がある場合のみ)
		if len(updates) > 0 {
			if err := s.textRepo.Update(ctx, tx, textID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				s.logger.Error("Error updating practice text in transaction", slog.Any("error", err))
				return model.ErrInternalServer
			}
		}

		// 更新後のデータを取得
		updated, err = s.textRepo.FindByID(ctx, tx, textID)
		if err != nil {
			s.logger.Error("Error fetching updated practice text in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PutText", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updated, nil
}

func (s *textService) DeleteText(ctx context.Context, textID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.textRepo.Delete(ctx, tx, textID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			s.logger.Error("Error deleting practice text in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	return err
}
