package repository

import (
	"context"

	"brackk/internal/docstore"
	"brackk/internal/domain/model"
	domainrepo "brackk/internal/repository"
)

type creditAccountDocRepository struct {
	store docstore.Store
}

// DI
func NewCreditAccountDocRepository(store docstore.Store) domainrepo.CreditAccountRepository {
	return &creditAccountDocRepository{store: store}
}

func (r *creditAccountDocRepository) FindByUserID(ctx context.Context, userID string) (model.CreditAccount, error) {
	doc, err := r.store.FindOne(ctx, docstore.CollectionCreditAccount, docstore.Filter{"user_id": userID})
	if err != nil {
		return model.CreditAccount{}, mapErr(err)
	}
	return decodeCreditAccount(doc)
}

// CreateIfAbsent はuser_idのunique制約付きで挿入し、勝敗に関わらず
// 最終的に存在するアカウントを返す。
func (r *creditAccountDocRepository) CreateIfAbsent(ctx context.Context, acct model.CreditAccount) (model.CreditAccount, error) {
	acct.ID = ""
	_, _, err := r.store.InsertUnique(ctx, docstore.CollectionCreditAccount, "user_id", acct.UserID, acct)
	if err != nil {
		return model.CreditAccount{}, err
	}
	return r.FindByUserID(ctx, acct.UserID)
}

func (r *creditAccountDocRepository) AddUsage(ctx context.Context, userID string, amount float64) (bool, error) {
	return r.store.AddWithinCap(ctx, docstore.CollectionCreditAccount,
		docstore.Filter{"user_id": userID},
		"credit_used", amount, "credit_limit",
	)
}

func (r *creditAccountDocRepository) SetFields(ctx context.Context, userID string, fields map[string]any) error {
	doc, err := r.store.FindOne(ctx, docstore.CollectionCreditAccount, docstore.Filter{"user_id": userID})
	if err != nil {
		return mapErr(err)
	}

	err = r.store.UpdateFields(ctx, docstore.CollectionCreditAccount, doc.ID, docstore.Filter(fields))
	if err != nil {
		return mapErr(err)
	}
	return nil
}

func decodeCreditAccount(doc docstore.Document) (model.CreditAccount, error) {
	var acct model.CreditAccount
	if err := doc.Decode(&acct); err != nil {
		return model.CreditAccount{}, err
	}
	acct.ID = doc.ID
	return acct, nil
}

type creditIncreaseRequestDocRepository struct {
	store docstore.Store
}

// DI
func NewCreditIncreaseRequestDocRepository(store docstore.Store) domainrepo.CreditIncreaseRequestRepository {
	return &creditIncreaseRequestDocRepository{store: store}
}

func (r *creditIncreaseRequestDocRepository) Create(ctx context.Context, req model.CreditIncreaseRequest) (string, error) {
	req.ID = ""
	return r.store.Insert(ctx, docstore.CollectionCreditIncreaseRequest, req)
}
