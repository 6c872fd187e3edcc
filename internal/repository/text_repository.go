//go:generate mockery --name TextRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_kana_practice/internal/middleware"
	"go_kana_practice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TextRepository は練習テキストカタログへのアクセスを抽象化します
type TextRepository interface {
	Create(ctx context.Context, tx *gorm.DB, text *model.PracticeText) error
	FindByID(ctx context.Context, db *gorm.DB, textID uuid.UUID) (*model.PracticeText, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.PracticeText, error)
	Update(ctx context.Context, tx *gorm.DB, textID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, textID uuid.UUID) error
	CheckDisplayExists(ctx context.Context, db *gorm.DB, display string, excludeTextID *uuid.UUID) (bool, error)
}

type gormTextRepository struct{}

func NewGormTextRepository() TextRepository {
	return &gormTextRepository{}
}

func (r *gormTextRepository) Create(ctx context.Context, tx *gorm.DB, text *model.PracticeText) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(text)
	if result.Error != nil {
		logger.Error("Error creating practice text in DB",
			"error", result.Error,
			"display", text.Display,
		)
		return fmt.Errorf("gormTextRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTextRepository) FindByID(ctx context.Context, db *gorm.DB, textID uuid.UUID) (*model.PracticeText, error) {
	logger := middleware.GetLogger(ctx)
	var text model.PracticeText
	result := db.WithContext(ctx).Where("text_id = ?", textID).First(&text)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding practice text by ID in DB",
			"error", result.Error,
			"text_id", textID.String(),
		)
		return nil, fmt.Errorf("gormTextRepository.FindByID: %w", result.Error)
	}
	return &text, nil
}

func (r *gormTextRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.PracticeText, error) {
	logger := middleware.GetLogger(ctx)
	var texts []*model.PracticeText
	result := db.WithContext(ctx).Order("created_at DESC").Find(&texts)
	if result.Error != nil {
		logger.Error("Error finding practice texts in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTextRepository.FindAll: %w", result.Error)
	}
	return texts, nil
}

func (r *gormTextRepository) Update(ctx context.Context, tx *gorm.DB, textID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.PracticeText{}).Where("text_id = ?", textID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating practice text in DB",
			"error", result.Error,
			"text_id", textID.String(),
		)
		return fmt.Errorf("gormTextRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTextRepository) Delete(ctx context.Context, tx *gorm.DB, textID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	// 論理削除が実行される
	result := tx.WithContext(ctx).Where("text_id = ?", textID).Delete(&model.PracticeText{})
	if result.Error != nil {
		logger.Error("Error deleting practice text in DB",
			"error", result.Error,
			"text_id", textID.String(),
		)
		return fmt.Errorf("gormTextRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTextRepository) CheckDisplayExists(ctx context.Context, db *gorm.DB, display string, excludeTextID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.PracticeText{}).Where("display = ?", display)
	if excludeTextID != nil {
		query = query.Where("text_id != ?", *excludeTextID)
	}
	if err := query.Count(&count).Error; err != nil {
		logger.Error("Error checking display existence in DB",
			"error", err,
			"display", display,
		)
		return false, fmt.Errorf("gormTextRepository.CheckDisplayExists: %w", err)
	}
	return count > 0, nil
}
