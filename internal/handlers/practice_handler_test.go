// internal/handlers/practice_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_kana_practice/internal/handlers"
	"go_kana_practice/internal/middleware"
	"go_kana_practice/internal/model"
	"go_kana_practice/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createRequest はテスト用のHTTPリクエストを組み立てます。
// sessionID が nil でなければ開発用認証ヘッダーを付けます。
func createRequest(t *testing.T, method, url string, body interface{}, sessionID *uuid.UUID) *http.Request {
	t.Helper()

	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
		reqBody = nil
	case io.Reader:
		reqBody = b
	default:
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(bodyBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != nil {
		req.Header.Set("X-Session-ID", sessionID.String())
	}
	return req
}

func TestPracticeHandler_StartPractice(t *testing.T) {
	validReq := model.StartPracticeRequest{
		Display: "大学生です",
		Reading: "だいがくせいです",
	}
	sessionID := uuid.New()
	expectedResp := &model.StartPracticeResponse{
		Session: model.SessionView{
			SessionID:        sessionID,
			Display:          validReq.Display,
			Position:         0,
			TotalInputLength: 8,
		},
		Token: "dummy-token",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockPracticeService)
		expectedStatus int
	}{
		{
			name: "正常系: セッション開始成功",
			body: validReq,
			setupMock: func(m *mocks.MockPracticeService) {
				m.On("StartSession", mock.Anything, &validReq).
					Return(expectedResp, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 壊れたJSONボディ",
			body:           bytes.NewBufferString(`{"display": "bad json`),
			setupMock:      func(m *mocks.MockPracticeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: サービスが入力エラーを返す",
			body: validReq,
			setupMock: func(m *mocks.MockPracticeService) {
				m.On("StartSession", mock.Anything, &validReq).
					Return(nil, model.ErrInvalidInput).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: セッション数上限",
			body: validReq,
			setupMock: func(m *mocks.MockPracticeService) {
				m.On("StartSession", mock.Anything, &validReq).
					Return(nil, model.ErrSessionLimit).Once()
			},
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockPracticeService(t)
			tc.setupMock(mockService)
			handler := handlers.NewPracticeHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Post("/api/v1/practice", handler.StartPractice)

			req := createRequest(t, "POST", "/api/v1/practice", tc.body, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var resp model.StartPracticeResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, sessionID, resp.Session.SessionID)
				assert.NotEmpty(t, resp.Token)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Message)
			}
		})
	}
}

func TestPracticeHandler_Keystroke(t *testing.T) {
	sessionID := uuid.New()
	validReq := model.KeystrokeRequest{Input: "た"}
	okResp := &model.KeystrokeResponse{
		Result: model.ValidationResult{
			IsValid:       true,
			CanContinue:   true,
			PossibleChars: []string{"だ"},
		},
		Position: 0,
		Segments: model.Segments{CurrentChar: "大", RemainingPart: "学生です"},
	}

	tests := []struct {
		name           string
		sessionID      *uuid.UUID
		body           interface{}
		setupMock      func(m *mocks.MockPracticeService)
		expectedStatus int
	}{
		{
			name:      "正常系: キーストローク判定",
			sessionID: &sessionID,
			body:      validReq,
			setupMock: func(m *mocks.MockPracticeService) {
				m.On("Keystroke", mock.Anything, sessionID, &validReq).
					Return(okResp, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 認証ヘッダーなし",
			sessionID:      nil,
			body:           validReq,
			setupMock:      func(m *mocks.MockPracticeService) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "異常系: 入力が空",
			sessionID:      &sessionID,
			body:           model.KeystrokeRequest{Input: ""},
			setupMock:      func(m *mocks.MockPracticeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "異常系: セッションが存在しない",
			sessionID: &sessionID,
			body:      validReq,
			setupMock: func(m *mocks.MockPracticeService) {
				m.On("Keystroke", mock.Anything, sessionID, &validReq).
					Return(nil, model.ErrSessionNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockPracticeService(t)
			tc.setupMock(mockService)
			handler := handlers.NewPracticeHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Use(middleware.DevSessionContextMiddleware)
			router.Post("/api/v1/practice/keystroke", handler.Keystroke)

			req := createRequest(t, "POST", "/api/v1/practice/keystroke", tc.body, tc.sessionID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp model.KeystrokeResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Result.IsValid)
				assert.Equal(t, []string{"だ"}, resp.Result.PossibleChars)
			}
		})
	}
}

func TestPracticeHandler_GetPractice(t *testing.T) {
	sessionID := uuid.New()
	view := &model.SessionView{
		SessionID:        sessionID,
		Display:          "木",
		Position:         1,
		TotalInputLength: 1,
		Finished:         true,
		Segments:         model.Segments{CompletedPart: "木"},
	}

	t.Run("正常系: セッション状態取得", func(t *testing.T) {
		mockService := mocks.NewMockPracticeService(t)
		mockService.On("GetSession", mock.Anything, sessionID).Return(view, nil).Once()
		handler := handlers.NewPracticeHandler(mockService, testLogger())
		router := chi.NewRouter()
		router.Use(middleware.DevSessionContextMiddleware)
		router.Get("/api/v1/practice", handler.GetPractice)

		req := createRequest(t, "GET", "/api/v1/practice", nil, &sessionID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp model.SessionView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Finished)
		assert.Equal(t, "木", resp.Segments.CompletedPart)
	})

	t.Run("異常系: 存在しないセッション", func(t *testing.T) {
		mockService := mocks.NewMockPracticeService(t)
		mockService.On("GetSession", mock.Anything, sessionID).
			Return(nil, model.ErrSessionNotFound).Once()
		handler := handlers.NewPracticeHandler(mockService, testLogger())
		router := chi.NewRouter()
		router.Use(middleware.DevSessionContextMiddleware)
		router.Get("/api/v1/practice", handler.GetPractice)

		req := createRequest(t, "GET", "/api/v1/practice", nil, &sessionID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPracticeHandler_EndPractice(t *testing.T) {
	sessionID := uuid.New()

	tests := []struct {
		name           string
		sessionID      *uuid.UUID
		setupMock      func(m *mocks.MockPracticeService)
		expectedStatus int
	}{
		{
			name:      "正常系: セッション終了",
			sessionID: &sessionID,
			setupMock: func(m *mocks.MockPracticeService) {
				m.On("EndSession", mock.Anything, sessionID).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "異常系: 存在しないセッション",
			sessionID: &sessionID,
			setupMock: func(m *mocks.MockPracticeService) {
				m.On("EndSession", mock.Anything, sessionID).
					Return(model.ErrSessionNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: 認証ヘッダーなし",
			sessionID:      nil,
			setupMock:      func(m *mocks.MockPracticeService) {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := mocks.NewMockPracticeService(t)
			tc.setupMock(mockService)
			handler := handlers.NewPracticeHandler(mockService, testLogger())
			router := chi.NewRouter()
			router.Use(middleware.DevSessionContextMiddleware)
			router.Delete("/api/v1/practice", handler.EndPractice)

			req := createRequest(t, "DELETE", "/api/v1/practice", nil, tc.sessionID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.Bytes())
			}
		})
	}
}
