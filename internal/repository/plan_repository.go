package repository

import (
	"context"

	"brackk/internal/domain/model"
)

type PlanRepository interface {
	Create(ctx context.Context, p model.SubscriptionPlan) (string, error)
	List(ctx context.Context, limit int) ([]model.SubscriptionPlan, error)
}
