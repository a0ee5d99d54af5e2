// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/userboard/internal/model"
)

// ErrDuplicateEmail はemailの一意性制約違反を示す。
// ハンドラー側の重複事前チェックは高速で親切なエラーを返すための最適化であり、
// 正しさの保証はストア層のUNIQUE制約（このエラーの発生源）が担う。
var ErrDuplicateEmail = errors.New("email already exists")

// AccountRepository は認証アカウントの永続化インターフェース。
type AccountRepository interface {
	// FindByEmail は指定emailのアカウントを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.Account, error)

	// Create はアカウントを作成する。IDが空の場合はストアが生成する。
	// email重複の場合はErrDuplicateEmailを返す。
	Create(ctx context.Context, account *model.Account) error
}

// UserRepository はユーザーレコードの永続化インターフェース。
// 各操作は単一レコードレベルでアトミックであり、レコード横断のトランザクションは仮定しない。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.UserRecord, error)

	// FindAll はユーザー一覧を返す。filterがnilの場合は全件。
	// パスワードフィールドは射影の時点で除外される（レスポンスに漏れない）。
	FindAll(ctx context.Context, filter *model.UserFilter) ([]*model.UserRecord, error)

	// FindByEmail は指定emailのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.UserRecord, error)

	// Create はユーザーを作成する。IDが空の場合はストアが生成する。
	// email重複の場合はErrDuplicateEmailを返す。
	Create(ctx context.Context, user *model.UserRecord) error

	// UpdateByID は指定IDのユーザーを部分更新し、更新後のレコードを返す。
	// 対象が存在しない場合はnilを返す。
	UpdateByID(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error)

	// DeleteByID は指定IDのユーザーを削除し、削除したレコードを返す。
	// 対象が存在しない場合はnilを返す。
	DeleteByID(ctx context.Context, id string) (*model.UserRecord, error)
}
