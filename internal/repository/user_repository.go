package repository

import (
	"context"

	"brackk/internal/domain/model"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。採番したIDを返す。
	Create(ctx context.Context, user model.User) (string, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID string) (model.User, error)
	// メールからユーザーを1件取得する。
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// 全ユーザー取得（管理者用）。
	List(ctx context.Context) ([]model.User, error)
	// 指定項目だけ更新（管理者用：name / is_admin / is_active）。
	UpdateFields(ctx context.Context, userID string, fields map[string]any) error
}
