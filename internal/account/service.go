// Package account はサインアップとログインのドメインロジックを提供する。
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hitoshi/userboard/internal/model"
	"github.com/hitoshi/userboard/internal/repository"
	"github.com/hitoshi/userboard/internal/security"
)

// PasswordHasher はパスワードのハッシュ化と検証に必要なインターフェース。
// auth.CredentialServiceの部分集合として定義する。
type PasswordHasher interface {
	HashPassword(plaintext string) (string, error)
	VerifyPassword(plaintext, hash string) bool
}

// TokenIssuer はトークン発行に必要なインターフェース。
// auth.TokenServiceの部分集合として定義する。
type TokenIssuer interface {
	Issue(accountID, email string) (string, error)
}

// SignupParams はサインアップの入力。
type SignupParams struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// Service はアカウント認証のドメインサービス。
type Service struct {
	accounts  repository.AccountRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	sanitizer security.InputSanitizerService
}

// NewService はServiceを生成する。
func NewService(accounts repository.AccountRepository, hasher PasswordHasher, tokens TokenIssuer, sanitizer security.InputSanitizerService) *Service {
	return &Service{
		accounts:  accounts,
		hasher:    hasher,
		tokens:    tokens,
		sanitizer: sanitizer,
	}
}

// Signup は新規アカウントを作成する。
//
// email重複の事前チェックで見つかった場合はUserExistsを返す。
// 事前チェックはcheck-then-actの競合があるため、ストアのUNIQUE制約違反も
// 同様にUserExistsへマッピングする（正しさの保証は制約側）。
// 返されるAccountはPasswordHashを含むため、レスポンスへの変換時に除去すること。
func (s *Service) Signup(ctx context.Context, in SignupParams) (*model.Account, error) {
	existing, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, model.NewUserExistsError()
	}

	hash, err := s.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &model.Account{
		Username:     s.sanitizer.Sanitize(in.Username),
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, acct); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, model.NewUserExistsError()
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return acct, nil
}

// Login は認証情報を検証し、ベアラートークンを発行する。
//
// アカウントが存在しない場合はUserNotFound、パスワード不一致の場合は
// InvalidPasswordを返す。成功時は1時間有効なトークン文字列を返す。
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	acct, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to find account: %w", err)
	}
	if acct == nil {
		return "", model.NewUserNotFoundError()
	}

	if !s.hasher.VerifyPassword(password, acct.PasswordHash) {
		return "", model.NewInvalidPasswordError()
	}

	token, err := s.tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
