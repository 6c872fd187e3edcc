// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"go_kana_practice/internal/model"
	"go_kana_practice/internal/webutil"

	"github.com/google/uuid"
)

// DevSessionContextMiddleware は開発時用ミドルウェアです。
// X-Session-ID ヘッダーからUUIDを抽出し、トークン検証なしで
// コンテキストに設定します。
func DevSessionContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		sessionIDStr := r.Header.Get("X-Session-ID")
		if sessionIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-Session-ID header missing")
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Session-IDヘッダーが必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		sessionID, err := uuid.Parse(sessionIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-Session-ID format", "session_id", sessionIDStr)
			appErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-Session-IDの形式が正しくありません。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		// トークン検証はスキップ
		ctx := context.WithValue(r.Context(), model.SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
