package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/userboard/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーレコードリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByID(ctx context.Context, id string) (*model.UserRecord, error) {
	user := &model.UserRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, phone, password, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Phone,
		&user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}

// FindAll はユーザー一覧を返す。filterがnilの場合は全件。
// パスワードはSELECT句から除外し、レスポンス経路に乗らないようにする。
func (r *PostgresUserRepo) FindAll(ctx context.Context, filter *model.UserFilter) ([]*model.UserRecord, error) {
	query := `SELECT id, username, email, phone, created_at, updated_at FROM users`
	var args []interface{}

	if filter != nil && filter.Email != nil {
		query += ` WHERE email = $1`
		args = append(args, *filter.Email)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*model.UserRecord{}
	for rows.Next() {
		user := &model.UserRecord{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Phone,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// FindByEmail は指定emailのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByEmail(ctx context.Context, email string) (*model.UserRecord, error) {
	user := &model.UserRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, phone, password, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Phone,
		&user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return user, nil
}

// Create はユーザーを作成する。IDが空の場合はUUIDを生成して割り当てる。
// emailのUNIQUE制約違反はErrDuplicateEmailにマッピングする。
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.UserRecord) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, phone, password, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.Phone, user.Password,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateByID は指定IDのユーザーを部分更新し、更新後のレコードを返す。
// nilのパッチフィールドはCOALESCEで既存値を維持する。対象が存在しない場合はnilを返す。
func (r *PostgresUserRepo) UpdateByID(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error) {
	user := &model.UserRecord{}
	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET
		   username = COALESCE($2, username),
		   email = COALESCE($3, email),
		   phone = COALESCE($4, phone),
		   password = COALESCE($5, password),
		   updated_at = $6
		 WHERE id = $1
		 RETURNING id, username, email, phone, password, created_at, updated_at`,
		id, patch.Username, patch.Email, patch.Phone, patch.Password, time.Now().UTC(),
	).Scan(&user.ID, &user.Username, &user.Email, &user.Phone,
		&user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteByID は指定IDのユーザーを削除し、削除したレコードを返す。
// 対象が存在しない場合はnilを返す。
func (r *PostgresUserRepo) DeleteByID(ctx context.Context, id string) (*model.UserRecord, error) {
	user := &model.UserRecord{}
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM users WHERE id = $1
		 RETURNING id, username, email, phone, password, created_at, updated_at`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Phone,
		&user.Password, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return user, nil
}
