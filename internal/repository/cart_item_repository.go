package repository

import (
	"context"

	"brackk/internal/domain/model"
)

type CartItemRepository interface {
	// (user_id, product_id) で1件取得。無ければErrNotFound。
	FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (string, error)
	// 数量は置き換え（加算ではない）
	UpdateQuantity(ctx context.Context, cartItemID string, quantity int64) error
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)
	// 注文確定時にユーザーの明細をまとめて消す
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
