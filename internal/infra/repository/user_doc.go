package repository

import (
	"context"
	"errors"

	"brackk/internal/docstore"
	"brackk/internal/domain/model"
	domainrepo "brackk/internal/repository"
)

type userDocRepository struct {
	store docstore.Store
}

// DI
// main.goでこれをnewしてusecaseに注入する。
func NewUserDocRepository(store docstore.Store) domainrepo.UserRepository {
	return &userDocRepository{store: store}
}

func (r *userDocRepository) Create(ctx context.Context, user model.User) (string, error) {
	user.ID = ""
	return r.store.Insert(ctx, docstore.CollectionUser, user)
}

func (r *userDocRepository) FindByID(ctx context.Context, userID string) (model.User, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionUser, userID)
	if err != nil {
		return model.User{}, mapErr(err)
	}
	return decodeUser(doc)
}

func (r *userDocRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	doc, err := r.store.FindOne(ctx, docstore.CollectionUser, docstore.Filter{"email": email})
	if err != nil {
		return model.User{}, mapErr(err)
	}
	return decodeUser(doc)
}

func (r *userDocRepository) List(ctx context.Context) ([]model.User, error) {
	docs, err := r.store.Query(ctx, docstore.CollectionUser, nil, docstore.Options{})
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		u, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *userDocRepository) UpdateFields(ctx context.Context, userID string, fields map[string]any) error {
	err := r.store.UpdateFields(ctx, docstore.CollectionUser, userID, docstore.Filter(fields))
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func decodeUser(doc docstore.Document) (model.User, error) {
	var u model.User
	if err := doc.Decode(&u); err != nil {
		return model.User{}, err
	}
	u.ID = doc.ID
	return u, nil
}

// ストアのErrNotFoundをrepositoryの語彙に寄せる
func mapErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return domainrepo.ErrNotFound
	}
	return err
}
