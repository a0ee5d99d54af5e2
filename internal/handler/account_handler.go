package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hitoshi/userboard/internal/account"
	"github.com/hitoshi/userboard/internal/model"
	"github.com/hitoshi/userboard/internal/validation"
)

// AccountServiceInterface はアカウントハンドラーが必要とするサービスインターフェース。
type AccountServiceInterface interface {
	// Signup は新規アカウントを作成する。email重複の場合はUserExistsを返す。
	Signup(ctx context.Context, in account.SignupParams) (*model.Account, error)
	// Login は認証情報を検証しベアラートークンを発行する。
	Login(ctx context.Context, email, password string) (string, error)
}

// AccountHandler はサインアップとログインのHTTPハンドラー。
type AccountHandler struct {
	service AccountServiceInterface
}

// NewAccountHandler はAccountHandlerを生成する。
func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		service: service,
	}
}

// signupRequest はサインアップリクエストのボディ。
type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// loginRequest はログインリクエストのボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountResponse はアカウント情報のAPIレスポンス。
// パスワードハッシュはフィールド自体を持たず、決して呼び出し元に返らない。
type accountResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// tokenResponse はログイン成功時のAPIレスポンス。
type tokenResponse struct {
	Token string `json:"token"`
}

// Signup はアカウント登録を処理する。
// POST /api/signup
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, model.NewInvalidRequestError(""))
		return
	}

	if v := validation.ValidateSignup(validation.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}); v != nil {
		writeAppError(w, model.NewValidationError("Validation error: "+v.Message))
		return
	}

	acct, err := h.service.Signup(r.Context(), account.SignupParams{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, err, "Failed to create user")
		return
	}

	writeSuccess(w, http.StatusOK, "Signup successful", toAccountResponse(acct))
}

// Login はログインを処理する。
// POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, model.NewInvalidRequestError(""))
		return
	}

	if v := validation.ValidateLogin(validation.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}); v != nil {
		writeAppError(w, model.NewInvalidRequestError("Invalid data: "+v.Message))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err, "Failed to login")
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", tokenResponse{Token: token})
}

// toAccountResponse はドメインのAccountをレスポンス型に変換する。
// パスワードハッシュはここで落ちる。
func toAccountResponse(acct *model.Account) accountResponse {
	return accountResponse{
		ID:        acct.ID,
		Username:  acct.Username,
		Email:     acct.Email,
		Phone:     acct.Phone,
		CreatedAt: acct.CreatedAt,
	}
}
