// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/userboard/internal/model"
)

// successEnvelope は成功レスポンスの統一フォーマット。
type successEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// errorEnvelope はエラーレスポンスの統一フォーマット。
// 内部の詳細（スタックトレースやストアのエラーテキスト）は含めない。
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// writeSuccess は統一成功フォーマットでレスポンスを書き込む。
func writeSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(successEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeAppError はドメインエラーを統一エラーフォーマットで書き込む。
// ステータスコードはKindから解決する。
func writeAppError(w http.ResponseWriter, appErr *model.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Kind.Status())
	json.NewEncoder(w).Encode(errorEnvelope{
		Success: false,
		Message: appErr.Message,
	})
}

// handleServiceError はサービス層から返されたエラーをレスポンスに変換する。
// AppErrorはそのまま書き込み、それ以外（ストア接続障害等の未分類エラー）は
// ログに記録した上でfallbackMessageを持つ500レスポンスに丸める。
func handleServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		writeAppError(w, appErr)
		return
	}

	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAppError(w, model.NewInternalError(fallbackMessage))
}
