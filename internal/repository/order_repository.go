package repository

import (
	"context"

	"brackk/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (string, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// 新しい順で返す
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
}
