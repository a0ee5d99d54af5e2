package model

import (
	"fmt"
	"net/http"
)

// Kind はドメインエラーの分類を表す。9種類の閉じた集合であり、
// ハンドラー内で発生するエラーは必ずいずれかのKindを持つ。
type Kind string

// 定義済みエラー分類
const (
	KindNotFound        Kind = "NOT_FOUND"
	KindValidationError Kind = "VALIDATION_ERROR"
	KindInvalidRequest  Kind = "INVALID_REQUEST"
	KindUserExists      Kind = "USER_EXISTS"
	KindUserNotFound    Kind = "USER_NOT_FOUND"
	KindInvalidPassword Kind = "INVALID_PASSWORD"
	KindInvalidID       Kind = "INVALID_ID"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindInternal        Kind = "INTERNAL"
)

// Status はKindに対応するHTTPステータスコードを返す。
// ステータスコードはKindから一意に決まり、個別のエラーでは上書きできない。
func (k Kind) Status() int {
	switch k {
	case KindNotFound, KindUserNotFound:
		return http.StatusNotFound
	case KindValidationError, KindInvalidRequest:
		return http.StatusUnprocessableEntity
	case KindUserExists:
		return http.StatusConflict
	case KindInvalidPassword, KindUnauthorized:
		return http.StatusUnauthorized
	case KindInvalidID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage はKindに対応するデフォルトメッセージを返す。
func (k Kind) DefaultMessage() string {
	switch k {
	case KindNotFound:
		return "Not Found"
	case KindValidationError:
		return "Validation Error"
	case KindInvalidRequest:
		return "Invalid Request"
	case KindUserExists:
		return "User already exists"
	case KindUserNotFound:
		return "User not found"
	case KindInvalidPassword:
		return "Invalid password"
	case KindInvalidID:
		return "Invalid User ID"
	case KindUnauthorized:
		return "Unauthorized: No token provided"
	default:
		return "Internal Server Error"
	}
}

// AppError はドメインエラーを表す。Kindタグとメッセージの組で、
// レスポンスのステータスコードはKindから導出される。
// メッセージはエラーごとに上書きできる（例: "Validation error: <詳細>"）。
type AppError struct {
	Kind    Kind
	Message string
}

// Error はerrorインターフェースを実装する。
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// newAppError はAppErrorを生成する。messageが空の場合はKindのデフォルトを使う。
func newAppError(kind Kind, message string) *AppError {
	if message == "" {
		message = kind.DefaultMessage()
	}
	return &AppError{Kind: kind, Message: message}
}

// NewNotFoundError は汎用の未検出エラーを生成する。
func NewNotFoundError(message string) *AppError {
	return newAppError(KindNotFound, message)
}

// NewValidationError はバリデーションエラーを生成する。
// messageには違反内容の詳細を渡す（空の場合はデフォルトメッセージ）。
func NewValidationError(message string) *AppError {
	return newAppError(KindValidationError, message)
}

// NewInvalidRequestError は不正リクエストエラーを生成する。
func NewInvalidRequestError(message string) *AppError {
	return newAppError(KindInvalidRequest, message)
}

// NewUserExistsError はメールアドレス重複エラーを生成する。
func NewUserExistsError() *AppError {
	return newAppError(KindUserExists, "")
}

// NewUserNotFoundError はユーザー未検出エラーを生成する。
func NewUserNotFoundError() *AppError {
	return newAppError(KindUserNotFound, "")
}

// NewInvalidPasswordError はパスワード不一致エラーを生成する。
func NewInvalidPasswordError() *AppError {
	return newAppError(KindInvalidPassword, "")
}

// NewInvalidIDError は識別子フォーマット不正エラーを生成する。
func NewInvalidIDError() *AppError {
	return newAppError(KindInvalidID, "")
}

// NewUnauthorizedError は未認証エラーを生成する。
// messageが空の場合は「トークン未提供」のデフォルトメッセージを使う。
func NewUnauthorizedError(message string) *AppError {
	return newAppError(KindUnauthorized, message)
}

// NewInternalError は内部エラーを生成する。
// 内部の詳細（ストアのエラーテキスト等）は呼び出し元に漏らさないこと。
func NewInternalError(message string) *AppError {
	return newAppError(KindInternal, message)
}
