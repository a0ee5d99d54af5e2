package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hitoshi/userboard/internal/auth"
	"github.com/hitoshi/userboard/internal/model"
	"github.com/hitoshi/userboard/internal/user"
	"github.com/hitoshi/userboard/internal/validation"
)

const bearerPrefix = "Bearer "

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// List はユーザー一覧を返す。0件でも空スライスの成功。
	List(ctx context.Context) ([]*model.UserRecord, error)
	// Create は新規ユーザーレコードを作成する。email重複の場合はUserExistsを返す。
	Create(ctx context.Context, in user.CreateParams) (*model.UserRecord, error)
	// Update は指定IDのユーザーを部分更新する。未検出の場合はUserNotFoundを返す。
	Update(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error)
	// Delete は指定IDのユーザーを削除する。未検出の場合はUserNotFoundを返す。
	Delete(ctx context.Context, id string) (*model.UserRecord, error)
}

// TokenVerifier はベアラートークンの検証に必要なインターフェース。
// auth.TokenServiceの部分集合として定義する。
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserHandler はユーザーレコード管理のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
	tokens  TokenVerifier
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface, tokens TokenVerifier) *UserHandler {
	return &UserHandler{
		service: service,
		tokens:  tokens,
	}
}

// createUserRequest はユーザー作成リクエストのボディ。
type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// updateUserRequest はユーザー更新リクエストのボディ。
// ポインタフィールドで「未指定」と「空文字」を区別する。
type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// userResponse はユーザーレコードのAPIレスポンス。
// パスワードはフィールド自体を持たず、決して呼び出し元に返らない。
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// List はユーザー一覧を取得する。認証不要。
// GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err, "Failed to retrieve data")
		return
	}

	results := make([]userResponse, 0, len(users))
	for _, u := range users {
		results = append(results, toUserResponse(u))
	}

	writeSuccess(w, http.StatusOK, "Data retrieved successfully", results)
}

// Create はユーザー作成を処理する。
// トークン検証はバリデーションおよびストアアクセスより先に行う。
// POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if appErr := h.authorize(r); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, model.NewInvalidRequestError(""))
		return
	}

	if v := validation.ValidateCreateUser(validation.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}); v != nil {
		writeAppError(w, model.NewValidationError("Validation error: "+v.Message))
		return
	}

	created, err := h.service.Create(r.Context(), user.CreateParams{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, err, "Failed to save user")
		return
	}

	writeSuccess(w, http.StatusCreated, "User saved successfully", toUserResponse(created))
}

// Update はユーザー更新を処理する。
// チェックの順序: 識別子フォーマット → トークン → バリデーション → ストアアクセス。
// 安価なローカルチェックを先に失敗させ、無駄なラウンドトリップを避ける。
// PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !isValidUserID(id) {
		writeAppError(w, model.NewInvalidIDError())
		return
	}

	if appErr := h.authorize(r); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, model.NewInvalidRequestError(""))
		return
	}

	if v := validation.ValidateUpdateUser(validation.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}); v != nil {
		writeAppError(w, model.NewValidationError("Validation error: "+v.Message))
		return
	}

	updated, err := h.service.Update(r.Context(), id, model.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, err, "Failed to update user")
		return
	}

	writeSuccess(w, http.StatusOK, "Data updated successfully", toUserResponse(updated))
}

// Delete はユーザー削除を処理する。
// チェックの順序はUpdateと同じ（識別子 → トークン → ストアアクセス）。
// DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !isValidUserID(id) {
		writeAppError(w, model.NewInvalidIDError())
		return
	}

	if appErr := h.authorize(r); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Failed to delete user")
		return
	}

	writeSuccess(w, http.StatusOK, "Data deleted successfully", toUserResponse(deleted))
}

// authorize はAuthorizationヘッダーのベアラートークンを検証する。
// トークン未提供・不正・期限切れの場合はUnauthorizedを返す。
func (h *UserHandler) authorize(r *http.Request) *model.AppError {
	token, ok := bearerToken(r)
	if !ok {
		return model.NewUnauthorizedError("")
	}
	if _, err := h.tokens.Verify(token); err != nil {
		return model.NewUnauthorizedError("Unauthorized: Invalid token")
	}
	return nil
}

// bearerToken はAuthorizationヘッダーからベアラートークンを取り出す。
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// isValidUserID は識別子が正規フォーマット（UUID）かどうかを検証する。
// 不正な識別子はストアアクセスの前に弾く。
func isValidUserID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// toUserResponse はドメインのUserRecordをレスポンス型に変換する。
// パスワードはここで落ちる。
func toUserResponse(u *model.UserRecord) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
