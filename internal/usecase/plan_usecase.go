package usecase

import (
	"context"
	"net/http"
	"strings"

	"brackk/internal/domain/model"
	repo "brackk/internal/repository"
)

type PlanUsecase struct {
	planRepo repo.PlanRepository
}

// DI
func NewPlanUsecase(planRepo repo.PlanRepository) *PlanUsecase {
	return &PlanUsecase{planRepo: planRepo}
}

const planListLimit = 20

// List は公開プラン一覧（最大20件）。
func (u *PlanUsecase) List(ctx context.Context) ([]model.SubscriptionPlan, error) {
	plans, err := u.planRepo.List(ctx, planListLimit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return plans, nil
}

type CreatePlanInput struct {
	Name          string
	PricePerMonth float64
	Features      []string
	IsActive      bool
}

func (u *PlanUsecase) AdminCreate(ctx context.Context, in CreatePlanInput) (string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.PricePerMonth < 0 {
		return "", NewHTTPError(http.StatusBadRequest, "price_per_month must be >= 0")
	}

	features := in.Features
	if features == nil {
		features = []string{}
	}

	id, err := u.planRepo.Create(ctx, model.SubscriptionPlan{
		Name:          strings.TrimSpace(in.Name),
		PricePerMonth: in.PricePerMonth,
		Features:      features,
		IsActive:      in.IsActive,
	})
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}
