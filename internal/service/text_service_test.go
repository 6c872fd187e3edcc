// internal/service/text_service_test.go
package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go_kana_practice/internal/model"
	"go_kana_practice/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")
	return db
}

func testLogger() *slog.Logger {
	// 出力を捨てる
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_textService_PostText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	testDisplay := "大学生です"
	testReading := "だいがくせいです"

	tests := []struct {
		name      string
		req       *model.PostTextRequest
		setupMock func(repo *mocks.TextRepository)
		wantErr   error
		wantText  bool
	}{
		{
			name: "正常系: テキスト作成成功",
			req: &model.PostTextRequest{
				Display:     testDisplay,
				Reading:     testReading,
				AltReadings: []string{"だいがくせーです"},
			},
			setupMock: func(repo *mocks.TextRepository) {
				repo.On("CheckDisplayExists", ctx, mock.AnythingOfType("*gorm.DB"), testDisplay, (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.PracticeText")).
					Run(func(args mock.Arguments) {
						text := args.Get(2).(*model.PracticeText)
						assert.Equal(t, testDisplay, text.Display)
						assert.Equal(t, testReading, text.Reading)
						assert.Equal(t, "だいがくせーです", text.AltReadings)
						assert.NotEqual(t, uuid.Nil, text.TextID)
					}).Return(nil).Once()
			},
			wantErr:  nil,
			wantText: true,
		},
		{
			name: "異常系: Displayが空",
			req: &model.PostTextRequest{
				Display: "",
				Reading: testReading,
			},
			setupMock: func(repo *mocks.TextRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: Displayが重複",
			req: &model.PostTextRequest{
				Display: testDisplay,
				Reading: testReading,
			},
			setupMock: func(repo *mocks.TextRepository) {
				repo.On("CheckDisplayExists", ctx, mock.AnythingOfType("*gorm.DB"), testDisplay, (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := new(mocks.TextRepository)
			tc.setupMock(mockRepo)
			svc := NewTextService(db, mockRepo, testLogger())

			text, err := svc.PostText(ctx, tc.req)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tc.wantText {
				require.NotNil(t, text)
				assert.Equal(t, tc.req.Display, text.Display)
			} else {
				assert.Nil(t, text)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_textService_GetText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	textID := uuid.New()

	t.Run("正常系: 取得成功", func(t *testing.T) {
		mockRepo := new(mocks.TextRepository)
		expected := &model.PracticeText{TextID: textID, Display: "木", Reading: "き"}
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), textID).
			Return(expected, nil).Once()
		svc := NewTextService(db, mockRepo, testLogger())

		text, err := svc.GetText(ctx, textID)
		require.NoError(t, err)
		assert.Equal(t, expected, text)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないID", func(t *testing.T) {
		mockRepo := new(mocks.TextRepository)
		mockRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), textID).
			Return(nil, model.ErrNotFound).Once()
		svc := NewTextService(db, mockRepo, testLogger())

		text, err := svc.GetText(ctx, textID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, text)
		mockRepo.AssertExpectations(t)
	})
}

func Test_textService_DeleteText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	textID := uuid.New()

	t.Run("正常系: 削除成功", func(t *testing.T) {
		mockRepo := new(mocks.TextRepository)
		mockRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), textID).
			Return(nil).Once()
		svc := NewTextService(db, mockRepo, testLogger())

		err := svc.DeleteText(ctx, textID)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないID", func(t *testing.T) {
		mockRepo := new(mocks.TextRepository)
		mockRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), textID).
			Return(model.ErrNotFound).Once()
		svc := NewTextService(db, mockRepo, testLogger())

		err := svc.DeleteText(ctx, textID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
