// Package user はユーザーレコードのCRUDドメインロジックを提供する。
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hitoshi/userboard/internal/model"
	"github.com/hitoshi/userboard/internal/repository"
	"github.com/hitoshi/userboard/internal/security"
)

// CreateParams はユーザー作成の入力。
type CreateParams struct {
	Username string
	Email    string
	Phone    string
	Password string
}

// Service はユーザーレコード管理のドメインサービス。
// ハンドラーはステートレスで、状態はすべて外部ストアに置く。
type Service struct {
	users     repository.UserRepository
	sanitizer security.InputSanitizerService
}

// NewService はServiceを生成する。
func NewService(users repository.UserRepository, sanitizer security.InputSanitizerService) *Service {
	return &Service{
		users:     users,
		sanitizer: sanitizer,
	}
}

// List はユーザー一覧を返す。
// 0件の場合も空のスライスを返す成功であり、未検出エラーとは扱わない。
func (s *Service) List(ctx context.Context) ([]*model.UserRecord, error) {
	users, err := s.users.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create は新規ユーザーレコードを作成する。
// email重複は事前チェックとストアのUNIQUE制約の両方でUserExistsへマッピングする。
func (s *Service) Create(ctx context.Context, in CreateParams) (*model.UserRecord, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, model.NewUserExistsError()
	}

	now := time.Now().UTC()
	record := &model.UserRecord{
		Username:  s.sanitizer.Sanitize(in.Username),
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  in.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, model.NewUserExistsError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return record, nil
}

// Update は指定IDのユーザーレコードを部分更新する。
// nilのパッチフィールドは既存値を維持する。対象が存在しない場合はUserNotFoundを返す。
func (s *Service) Update(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error) {
	if patch.Username != nil {
		sanitized := s.sanitizer.Sanitize(*patch.Username)
		patch.Username = &sanitized
	}

	updated, err := s.users.UpdateByID(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, model.NewUserExistsError()
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if updated == nil {
		return nil, model.NewUserNotFoundError()
	}

	return updated, nil
}

// Delete は指定IDのユーザーレコードを削除し、削除したレコードを返す。
// 対象が存在しない場合はUserNotFoundを返す。
func (s *Service) Delete(ctx context.Context, id string) (*model.UserRecord, error) {
	deleted, err := s.users.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	if deleted == nil {
		return nil, model.NewUserNotFoundError()
	}

	return deleted, nil
}
