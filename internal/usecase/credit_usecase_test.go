package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"brackk/internal/domain/model"
	"brackk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 初回GETで与信アカウントがデフォルト値で作られる
func TestCreditUsecase_Get_LazyCreate(t *testing.T) {
	ctx := context.Background()
	creditRepo := new(MockCreditAccountRepository)
	requestRepo := new(MockCreditIncreaseRequestRepository)

	want := model.NewCreditAccount("user-1")
	want.ID = "acct-1"
	creditRepo.On("CreateIfAbsent", ctx, model.NewCreditAccount("user-1")).Return(want, nil)

	uc := usecase.NewCreditUsecase(creditRepo, requestRepo)
	acct, err := uc.Get(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "acct-1", acct.ID)
	assert.Equal(t, model.DefaultCreditLimit, acct.CreditLimit)
	assert.Equal(t, float64(0), acct.CreditUsed)
	assert.Equal(t, model.DefaultBillingDay, acct.BillingDay)
}

func TestCreditUsecase_RequestIncrease_RecordsPending(t *testing.T) {
	ctx := context.Background()
	creditRepo := new(MockCreditAccountRepository)
	requestRepo := new(MockCreditIncreaseRequestRepository)

	requestRepo.On("Create", ctx, model.CreditIncreaseRequest{
		UserID:         "user-1",
		CurrentLimit:   5000,
		RequestedLimit: 10000,
		Status:         model.CreditRequestPending,
	}).Return("req-1", nil)

	uc := usecase.NewCreditUsecase(creditRepo, requestRepo)
	out, err := uc.RequestIncrease(ctx, "user-1", usecase.RequestIncreaseInput{
		UserID:         "user-1",
		CurrentLimit:   5000,
		RequestedLimit: 10000,
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", out.ID)
	assert.Equal(t, model.CreditRequestPending, out.Status)
	requestRepo.AssertExpectations(t)
}

func TestCreditUsecase_RequestIncrease_OtherUserForbidden(t *testing.T) {
	requestRepo := new(MockCreditIncreaseRequestRepository)
	uc := usecase.NewCreditUsecase(new(MockCreditAccountRepository), requestRepo)

	_, err := uc.RequestIncrease(context.Background(), "user-1", usecase.RequestIncreaseInput{
		UserID:         "user-2",
		RequestedLimit: 10000,
	})

	assertHTTPError(t, err, http.StatusForbidden)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
