// internal/handlers/text_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_kana_practice/internal/model"
	"go_kana_practice/internal/service"
	"go_kana_practice/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TextHandler struct {
	service service.TextService
	logger  *slog.Logger
}

func NewTextHandler(s service.TextService, logger *slog.Logger) *TextHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextHandler{
		service: s,
		logger:  logger,
	}
}

// PostText は新しい練習テキストを登録するためのハンドラ
func (h *TextHandler) PostText(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostText"))

	var req model.PostTextRequest
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

	text, err := h.service.PostText(r.Context(), &req)
	if err != nil {
		logger.Error("Error posting text in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice text posted successfully", slog.String("text_id", text.TextID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewPracticeTextResponse(text), logger)
}

// GetTexts は練習テキストの一覧を取得するためのハンドラ
func (h *TextHandler) GetTexts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTexts"))

	texts, err := h.service.GetTexts(r.Context())
	if err != nil {
		logger.Error("Error listing texts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := make([]*model.PracticeTextResponse, 0, len(texts))
	for _, text := range texts {
		resp = append(resp, model.NewPracticeTextResponse(text))
	}
	logger.Info("Practice texts listed successfully", slog.Int("count", len(resp)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetText は特定の練習テキストを取得するためのハンドラ
func (h *TextHandler) GetText(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetText"))

	textID, ok := parseTextID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("text_id", textID.String()))

	text, err := h.service.GetText(r.Context(), textID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Practice text not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting text from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice text retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, model.NewPracticeTextResponse(text), logger)
}

// PutText は特定の練習テキストを置き換えるためのハンドラ
func (h *TextHandler) PutText(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutText"))

	textID, ok := parseTextID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("text_id", textID.String()))

	var req model.PutTextRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutText request body", slog.String("error", err.Error()))
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

	text, err := h.service.PutText(r.Context(), textID, &req)
	if err != nil {
		logger.Error("Error putting text in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice text put successfully")
	webutil.RespondWithJSON(w, http.StatusOK, model.NewPracticeTextResponse(text), logger)
}

// DeleteText は特定の練習テキストを削除するためのハンドラ
func (h *TextHandler) DeleteText(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteText"))

	textID, ok := parseTextID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("text_id", textID.String()))

	if err := h.service.DeleteText(r.Context(), textID); err != nil {
		logger.Error("Error deleting text in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice text deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

func parseTextID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	textIDStr := chi.URLParam(r, "text_id")
	textID, err := uuid.Parse(textIDStr)
	if err != nil {
		logger.Warn("Invalid text ID format in URL", slog.String("text_id_str", textIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "text_idの形式が正しくありません。", "text_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return textID, true
}
