package repository

import (
	"context"

	"brackk/internal/docstore"
	"brackk/internal/domain/model"
	domainrepo "brackk/internal/repository"
)

type cartItemDocRepository struct {
	store docstore.Store
}

// DI
func NewCartItemDocRepository(store docstore.Store) domainrepo.CartItemRepository {
	return &cartItemDocRepository{store: store}
}

func (r *cartItemDocRepository) FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error) {
	doc, err := r.store.FindOne(ctx, docstore.CollectionCartItem, docstore.Filter{
		"user_id":    userID,
		"product_id": productID,
	})
	if err != nil {
		return model.CartItem{}, mapErr(err)
	}
	return decodeCartItem(doc)
}

func (r *cartItemDocRepository) Create(ctx context.Context, item model.CartItem) (string, error) {
	item.ID = ""
	return r.store.Insert(ctx, docstore.CollectionCartItem, item)
}

func (r *cartItemDocRepository) UpdateQuantity(ctx context.Context, cartItemID string, quantity int64) error {
	err := r.store.UpdateFields(ctx, docstore.CollectionCartItem, cartItemID, docstore.Filter{
		"quantity": quantity,
	})
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *cartItemDocRepository) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionCartItem, docstore.Filter{"user_id": userID}, docstore.Options{})
	if err != nil {
		return nil, err
	}

	items := make([]model.CartItem, 0, len(docs))
	for _, doc := range docs {
		item, err := decodeCartItem(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *cartItemDocRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	return r.store.DeleteMany(ctx, docstore.CollectionCartItem, docstore.Filter{"user_id": userID})
}

func decodeCartItem(doc docstore.Document) (model.CartItem, error) {
	var item model.CartItem
	if err := doc.Decode(&item); err != nil {
		return model.CartItem{}, err
	}
	item.ID = doc.ID
	return item, nil
}
