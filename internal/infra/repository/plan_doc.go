package repository

import (
	"context"

	"brackk/internal/docstore"
	"brackk/internal/domain/model"
	domainrepo "brackk/internal/repository"
)

type planDocRepository struct {
	store docstore.Store
}

// DI
func NewPlanDocRepository(store docstore.Store) domainrepo.PlanRepository {
	return &planDocRepository{store: store}
}

func (r *planDocRepository) Create(ctx context.Context, p model.SubscriptionPlan) (string, error) {
	p.ID = ""
	return r.store.Insert(ctx, docstore.CollectionSubscriptionPlan, p)
}

func (r *planDocRepository) List(ctx context.Context, limit int) ([]model.SubscriptionPlan, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionSubscriptionPlan, nil, docstore.Options{Limit: limit})
	if err != nil {
		return nil, err
	}

	plans := make([]model.SubscriptionPlan, 0, len(docs))
	for _, doc := range docs {
		var p model.SubscriptionPlan
		if err := doc.Decode(&p); err != nil {
			return nil, err
		}
		p.ID = doc.ID
		plans = append(plans, p)
	}
	return plans, nil
}
