// Package model はドメインモデルを定義する。
package model

import "time"

// Account は認証アイデンティティを表す。
// サインアップで作成され、ログイン時の認証情報検証で参照される。
// 作成後に変更されることはない。emailはアカウント間で一意。
type Account struct {
	ID           string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRecord は管理対象のユーザーリソースを表す。
// Accountとフィールドは重なるが別個に管理されるエンティティで、
// 認証済みのcreate/update/delete/list操作の対象となる。
type UserRecord struct {
	ID        string
	Username  string
	Email     string
	Phone     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch はUserRecordの部分更新を表す。
// nilのフィールドは変更せず、既存の値を維持する。
type UserPatch struct {
	Username *string
	Email    *string
	Phone    *string
	Password *string
}

// UserFilter はユーザー一覧取得の絞り込み条件を表す。
// nilのフィールドは条件なしとして扱う。
type UserFilter struct {
	Email *string
}
