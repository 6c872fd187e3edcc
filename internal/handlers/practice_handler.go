// internal/handlers/practice_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_kana_practice/internal/middleware"
	"go_kana_practice/internal/model"
	"go_kana_practice/internal/service"
	"go_kana_practice/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type PracticeHandler struct {
	service service.PracticeService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		service: s,
		logger:  logger,
	}
}

// StartPractice は練習セッションを開始するためのハンドラ。
// 認証不要で、レスポンスのトークンが以降のセッション操作の認証情報になる。
func (h *PracticeHandler) StartPractice(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartPractice"))

	var req model.StartPracticeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.StartSession(r.Context(), &req)
	if err != nil {
		logger.Error("Error starting practice session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice session started successfully", slog.String("session_id", resp.Session.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// Keystroke はキーストローク1回分を判定するためのハンドラ
func (h *PracticeHandler) Keystroke(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Keystroke"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	var req model.KeystrokeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode keystroke request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.Keystroke(r.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			logger.Info("Practice session not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error processing keystroke in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetPractice は進行中セッションの現在状態を取得するためのハンドラ
func (h *PracticeHandler) GetPractice(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPractice"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	view, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			logger.Info("Practice session not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting practice session from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, view, logger)
}

// EndPractice はセッションを終了するためのハンドラ
func (h *PracticeHandler) EndPractice(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "EndPractice"))

	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	if err := h.service.EndSession(r.Context(), sessionID); err != nil {
		logger.Error("Error ending practice session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice session ended successfully")
	w.WriteHeader(http.StatusNoContent)
}
