// Package auth は認証情報の取り扱いを提供する。
//
// CredentialService はパスワードのハッシュ化と検証を、
// TokenService はベアラートークンの発行と検証を担当する。
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialService はパスワードのハッシュ化と検証を行う。
// ハッシュはbcryptによるソルト付きで、同一入力でも呼び出しごとに異なる出力になる。
type CredentialService struct {
	cost int
}

// NewCredentialService はCredentialServiceを生成する。
// costが範囲外の場合はbcrypt.DefaultCostを使う。
func NewCredentialService(cost int) *CredentialService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialService{cost: cost}
}

// HashPassword は平文パスワードのbcryptハッシュを返す。
func (s *CredentialService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword は平文パスワードがハッシュと一致するかを返す。
// bcryptの比較は一致長に比例したタイミング情報を漏らさない。
func (s *CredentialService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
