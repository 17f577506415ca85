package repository

import (
	"context"

	"brackk/internal/domain/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (string, error)
	FindByID(ctx context.Context, productID string) (model.Product, error)
	List(ctx context.Context, limit int) ([]model.Product, error)

	// 管理画面用。全件を新しい順で返す。
	ListAll(ctx context.Context) ([]model.Product, error)
	UpdateFields(ctx context.Context, productID string, fields map[string]any) error
	Delete(ctx context.Context, productID string) error
}
