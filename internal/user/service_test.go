package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hitoshi/userboard/internal/model"
	"github.com/hitoshi/userboard/internal/repository"
)

// --- モック定義 ---

// mockUserRepo はUserRepositoryのモック実装。
type mockUserRepo struct {
	findByIDFn    func(ctx context.Context, id string) (*model.UserRecord, error)
	findAllFn     func(ctx context.Context, filter *model.UserFilter) ([]*model.UserRecord, error)
	findByEmailFn func(ctx context.Context, email string) (*model.UserRecord, error)
	createFn      func(ctx context.Context, user *model.UserRecord) error
	updateByIDFn  func(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error)
	deleteByIDFn  func(ctx context.Context, id string) (*model.UserRecord, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.UserRecord, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context, filter *model.UserFilter) ([]*model.UserRecord, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, filter)
	}
	return []*model.UserRecord{}, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.UserRecord, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.UserRecord) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) UpdateByID(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error) {
	if m.updateByIDFn != nil {
		return m.updateByIDFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockUserRepo) DeleteByID(ctx context.Context, id string) (*model.UserRecord, error) {
	if m.deleteByIDFn != nil {
		return m.deleteByIDFn(ctx, id)
	}
	return nil, nil
}

// mockSanitizer は入力をそのまま返すサニタイザ。
type mockSanitizer struct{}

func (m *mockSanitizer) Sanitize(input string) string {
	return strings.TrimSpace(input)
}

func strPtr(s string) *string { return &s }

// --- List テスト ---

// 0件の一覧も成功であり、nilではなく空スライスを返す
func TestService_List_Empty(t *testing.T) {
	svc := NewService(&mockUserRepo{}, &mockSanitizer{})

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if users == nil {
		t.Error("List() = nil, want empty slice")
	}
	if len(users) != 0 {
		t.Errorf("len(users) = %d, want 0", len(users))
	}
}

func TestService_List_ReturnsRecords(t *testing.T) {
	repo := &mockUserRepo{
		findAllFn: func(ctx context.Context, filter *model.UserFilter) ([]*model.UserRecord, error) {
			return []*model.UserRecord{
				{ID: "u1", Username: "alice"},
				{ID: "u2", Username: "bob"},
			}, nil
		},
	}

	svc := NewService(repo, &mockSanitizer{})

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("len(users) = %d, want 2", len(users))
	}
}

// --- Create テスト ---

func TestService_Create_Success(t *testing.T) {
	var created *model.UserRecord
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.UserRecord) error {
			created = user
			return nil
		},
	}

	svc := NewService(repo, &mockSanitizer{})

	record, err := svc.Create(context.Background(), CreateParams{
		Username: "bob",
		Email:    "bob@example.com",
		Phone:    "0901234567",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created == nil {
		t.Fatal("expected Create to be called")
	}
	if record.CreatedAt.IsZero() || record.UpdatedAt.IsZero() {
		t.Error("CreatedAt/UpdatedAt should be set")
	}
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	createCalled := false
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.UserRecord, error) {
			return &model.UserRecord{ID: "u1", Email: email}, nil
		},
		createFn: func(ctx context.Context, user *model.UserRecord) error {
			createCalled = true
			return nil
		},
	}

	svc := NewService(repo, &mockSanitizer{})

	_, err := svc.Create(context.Background(), CreateParams{
		Username: "bob",
		Email:    "bob@example.com",
		Phone:    "0901234567",
		Password: "secret1",
	})

	var appErr *model.AppError
	if !errors.As(err, &appErr) || appErr.Kind != model.KindUserExists {
		t.Fatalf("Create() error = %v, want UserExists", err)
	}
	if createCalled {
		t.Error("Create must not be called when email already exists")
	}
}

func TestService_Create_UniqueViolationMapsToUserExists(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.UserRecord) error {
			return repository.ErrDuplicateEmail
		},
	}

	svc := NewService(repo, &mockSanitizer{})

	_, err := svc.Create(context.Background(), CreateParams{
		Username: "bob",
		Email:    "bob@example.com",
		Phone:    "0901234567",
		Password: "secret1",
	})

	var appErr *model.AppError
	if !errors.As(err, &appErr) || appErr.Kind != model.KindUserExists {
		t.Fatalf("Create() error = %v, want UserExists", err)
	}
}

// --- Update テスト ---

func TestService_Update_PartialPatch(t *testing.T) {
	var gotPatch model.UserPatch
	repo := &mockUserRepo{
		updateByIDFn: func(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error) {
			gotPatch = patch
			return &model.UserRecord{ID: id, Username: "bobby", Email: "bob@example.com"}, nil
		},
	}

	svc := NewService(repo, &mockSanitizer{})

	updated, err := svc.Update(context.Background(), "u1", model.UserPatch{
		Username: strPtr("bobby"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Username != "bobby" {
		t.Errorf("Username = %q, want %q", updated.Username, "bobby")
	}

	// 未指定フィールドはnilのままストアへ渡される
	if gotPatch.Username == nil || *gotPatch.Username != "bobby" {
		t.Error("patch.Username should be set")
	}
	if gotPatch.Email != nil || gotPatch.Phone != nil || gotPatch.Password != nil {
		t.Error("unspecified patch fields should remain nil")
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(&mockUserRepo{}, &mockSanitizer{})

	_, err := svc.Update(context.Background(), "u1", model.UserPatch{Username: strPtr("bobby")})

	var appErr *model.AppError
	if !errors.As(err, &appErr) || appErr.Kind != model.KindUserNotFound {
		t.Fatalf("Update() error = %v, want UserNotFound", err)
	}
}

func TestService_Update_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		updateByIDFn: func(ctx context.Context, id string, patch model.UserPatch) (*model.UserRecord, error) {
			return nil, repository.ErrDuplicateEmail
		},
	}

	svc := NewService(repo, &mockSanitizer{})

	_, err := svc.Update(context.Background(), "u1", model.UserPatch{Email: strPtr("taken@example.com")})

	var appErr *model.AppError
	if !errors.As(err, &appErr) || appErr.Kind != model.KindUserExists {
		t.Fatalf("Update() error = %v, want UserExists", err)
	}
}

// --- Delete テスト ---

func TestService_Delete_Success(t *testing.T) {
	repo := &mockUserRepo{
		deleteByIDFn: func(ctx context.Context, id string) (*model.UserRecord, error) {
			return &model.UserRecord{ID: id, Username: "bob"}, nil
		},
	}

	svc := NewService(repo, &mockSanitizer{})

	deleted, err := svc.Delete(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != "u1" {
		t.Errorf("ID = %q, want %q", deleted.ID, "u1")
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(&mockUserRepo{}, &mockSanitizer{})

	_, err := svc.Delete(context.Background(), "u1")

	var appErr *model.AppError
	if !errors.As(err, &appErr) || appErr.Kind != model.KindUserNotFound {
		t.Fatalf("Delete() error = %v, want UserNotFound", err)
	}
}
