package repository

import (
	"context"

	"brackk/internal/docstore"
	"brackk/internal/domain/model"
	domainrepo "brackk/internal/repository"
)

type orderDocRepository struct {
	store docstore.Store
}

// DI
func NewOrderDocRepository(store docstore.Store) domainrepo.OrderRepository {
	return &orderDocRepository{store: store}
}

func (r *orderDocRepository) Create(ctx context.Context, o model.Order) (string, error) {
	o.ID = ""
	return r.store.Insert(ctx, docstore.CollectionOrder, o)
}

func (r *orderDocRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionOrder, orderID)
	if err != nil {
		return model.Order{}, mapErr(err)
	}
	return decodeOrder(doc)
}

func (r *orderDocRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionOrder,
		docstore.Filter{"user_id": userID},
		docstore.Options{NewestFirst: true},
	)
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(docs))
	for _, doc := range docs {
		o, err := decodeOrder(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func decodeOrder(doc docstore.Document) (model.Order, error) {
	var o model.Order
	if err := doc.Decode(&o); err != nil {
		return model.Order{}, err
	}
	o.ID = doc.ID
	return o, nil
}
