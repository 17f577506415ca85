package usecase

import (
	"context"
	"net/http"

	"brackk/internal/domain/model"
	repo "brackk/internal/repository"
)

type CreditUsecase struct {
	creditRepo  repo.CreditAccountRepository
	requestRepo repo.CreditIncreaseRequestRepository
}

// DI
func NewCreditUsecase(
	creditRepo repo.CreditAccountRepository,
	requestRepo repo.CreditIncreaseRequestRepository,
) *CreditUsecase {
	return &CreditUsecase{
		creditRepo:  creditRepo,
		requestRepo: requestRepo,
	}
}

// Get は与信アカウントを返す。無ければデフォルトで作る。
// 作成はuser_idのunique制約付きupsertなので初回同時アクセスでも1件に収まる。
func (u *CreditUsecase) Get(ctx context.Context, userID string) (model.CreditAccount, error) {
	acct, err := u.creditRepo.CreateIfAbsent(ctx, model.NewCreditAccount(userID))
	if err != nil {
		return model.CreditAccount{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return acct, nil
}

type RequestIncreaseInput struct {
	UserID         string
	CurrentLimit   float64
	RequestedLimit float64
}

type RequestIncreaseOutput struct {
	ID     string                    `json:"id"`
	Status model.CreditRequestStatus `json:"status"`
}

// RequestIncrease は増枠申請を記録するだけ。承認フローは未実装のまま。
func (u *CreditUsecase) RequestIncrease(ctx context.Context, subjectID string, in RequestIncreaseInput) (RequestIncreaseOutput, error) {
	if in.UserID != subjectID {
		return RequestIncreaseOutput{}, NewHTTPError(http.StatusForbidden, "cannot request for another user")
	}

	id, err := u.requestRepo.Create(ctx, model.CreditIncreaseRequest{
		UserID:         in.UserID,
		CurrentLimit:   in.CurrentLimit,
		RequestedLimit: in.RequestedLimit,
		Status:         model.CreditRequestPending,
	})
	if err != nil {
		return RequestIncreaseOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return RequestIncreaseOutput{ID: id, Status: model.CreditRequestPending}, nil
}
