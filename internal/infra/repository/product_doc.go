package repository

import (
	"context"

	"brackk/internal/docstore"
	"brackk/internal/domain/model"
	domainrepo "brackk/internal/repository"
)

type productDocRepository struct {
	store docstore.Store
}

// DI
func NewProductDocRepository(store docstore.Store) domainrepo.ProductRepository {
	return &productDocRepository{store: store}
}

func (r *productDocRepository) Create(ctx context.Context, p model.Product) (string, error) {
	p.ID = ""
	return r.store.Insert(ctx, docstore.CollectionProduct, p)
}

func (r *productDocRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionProduct, productID)
	if err != nil {
		return model.Product{}, mapErr(err)
	}

	var p model.Product
	if err := doc.Decode(&p); err != nil {
		return model.Product{}, err
	}
	p.ID = doc.ID
	return p, nil
}

func (r *productDocRepository) List(ctx context.Context, limit int) ([]model.Product, error) {
	return r.query(ctx, docstore.Options{Limit: limit})
}

func (r *productDocRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	return r.query(ctx, docstore.Options{NewestFirst: true})
}

func (r *productDocRepository) UpdateFields(ctx context.Context, productID string, fields map[string]any) error {
	err := r.store.UpdateFields(ctx, docstore.CollectionProduct, productID, docstore.Filter(fields))
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *productDocRepository) Delete(ctx context.Context, productID string) error {
	if err := r.store.Delete(ctx, docstore.CollectionProduct, productID); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *productDocRepository) query(ctx context.Context, opts docstore.Options) ([]model.Product, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionProduct, nil, opts)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		var p model.Product
		if err := doc.Decode(&p); err != nil {
			return nil, err
		}
		p.ID = doc.ID
		products = append(products, p)
	}
	return products, nil
}
