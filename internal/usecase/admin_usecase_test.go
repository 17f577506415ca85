package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"brackk/internal/domain/model"
	"brackk/internal/repository"
	"brackk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminUsecase_ListUsers_OmitsPasswordHash(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)

	userRepo.On("List", ctx).Return([]model.User{
		{ID: "user-1", Name: "Alice", Email: "a@example.com", PasswordHash: "secret", IsActive: true},
	}, nil)

	uc := usecase.NewAdminUsecase(userRepo, new(MockCreditAccountRepository), new(MockProductRepository))
	out, err := uc.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Alice", out[0].Name)
	// UserSummaryにはハッシュを持つfieldが存在しない（構造で保証）
	assert.Equal(t, usecase.UserSummary{
		ID: "user-1", Name: "Alice", Email: "a@example.com", IsActive: true,
	}, out[0])
}

func TestAdminUsecase_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("promote to admin", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		isAdmin := true

		userRepo.On("UpdateFields", ctx, "user-1", map[string]any{"is_admin": true}).Return(nil)
		userRepo.On("FindByID", ctx, "user-1").Return(model.User{
			ID: "user-1", Name: "Alice", IsAdmin: true, IsActive: true,
		}, nil)

		uc := usecase.NewAdminUsecase(userRepo, new(MockCreditAccountRepository), new(MockProductRepository))
		out, err := uc.UpdateUser(ctx, "user-1", usecase.UpdateUserInput{IsAdmin: &isAdmin})

		require.NoError(t, err)
		assert.True(t, out.IsAdmin)
	})

	t.Run("no fields", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := usecase.NewAdminUsecase(userRepo, new(MockCreditAccountRepository), new(MockProductRepository))

		_, err := uc.UpdateUser(ctx, "user-1", usecase.UpdateUserInput{})

		assertHTTPError(t, err, http.StatusBadRequest)
		userRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		name := "Bob"
		userRepo.On("UpdateFields", ctx, "ghost", map[string]any{"name": "Bob"}).
			Return(repository.ErrNotFound)

		uc := usecase.NewAdminUsecase(userRepo, new(MockCreditAccountRepository), new(MockProductRepository))
		_, err := uc.UpdateUser(ctx, "ghost", usecase.UpdateUserInput{Name: &name})

		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestAdminUsecase_SetCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		creditRepo := new(MockCreditAccountRepository)
		limit := float64(10000)

		creditRepo.On("SetFields", ctx, "user-1", map[string]any{"credit_limit": float64(10000)}).Return(nil)
		creditRepo.On("FindByUserID", ctx, "user-1").Return(model.CreditAccount{
			ID: "acct-1", UserID: "user-1", CreditLimit: 10000,
		}, nil)

		uc := usecase.NewAdminUsecase(new(MockUserRepository), creditRepo, new(MockProductRepository))
		acct, err := uc.SetCredit(ctx, "user-1", usecase.SetCreditInput{CreditLimit: &limit})

		require.NoError(t, err)
		assert.Equal(t, float64(10000), acct.CreditLimit)
	})

	t.Run("negative limit", func(t *testing.T) {
		limit := float64(-1)
		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), new(MockProductRepository))
		_, err := uc.SetCredit(ctx, "user-1", usecase.SetCreditInput{CreditLimit: &limit})
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("billing day out of range", func(t *testing.T) {
		day := 29
		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), new(MockProductRepository))
		_, err := uc.SetCredit(ctx, "user-1", usecase.SetCreditInput{BillingDay: &day})
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

// 管理画面の一覧はin_stock=falseも含めて全件返す
func TestAdminUsecase_ListProducts(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)

	products := []model.Product{
		{ID: "prod-2", Title: "Monitor", Price: 19800, InStock: false},
		{ID: "prod-1", Title: "Keyboard", Price: 4980, InStock: true},
	}
	productRepo.On("ListAll", ctx).Return(products, nil)

	uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), productRepo)
	out, err := uc.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, out)
	productRepo.AssertExpectations(t)
}

func TestAdminUsecase_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		price := float64(2980)
		inStock := false

		productRepo.On("UpdateFields", ctx, "prod-1", map[string]any{
			"price":    float64(2980),
			"in_stock": false,
		}).Return(nil)
		productRepo.On("FindByID", ctx, "prod-1").Return(model.Product{
			ID: "prod-1", Title: "Keyboard", Price: 2980, InStock: false,
		}, nil)

		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), productRepo)
		out, err := uc.UpdateProduct(ctx, "prod-1", usecase.UpdateProductInput{
			Price:   &price,
			InStock: &inStock,
		})

		require.NoError(t, err)
		assert.Equal(t, float64(2980), out.Price)
		assert.False(t, out.InStock)
		productRepo.AssertExpectations(t)
	})

	t.Run("no fields", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), productRepo)

		_, err := uc.UpdateProduct(ctx, "prod-1", usecase.UpdateProductInput{})

		assertHTTPError(t, err, http.StatusBadRequest)
		productRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty title", func(t *testing.T) {
		title := "   "
		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), new(MockProductRepository))
		_, err := uc.UpdateProduct(ctx, "prod-1", usecase.UpdateProductInput{Title: &title})
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("missing product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		price := float64(100)
		productRepo.On("UpdateFields", ctx, "ghost", map[string]any{"price": float64(100)}).
			Return(repository.ErrNotFound)

		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), productRepo)
		_, err := uc.UpdateProduct(ctx, "ghost", usecase.UpdateProductInput{Price: &price})

		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestAdminUsecase_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("Delete", ctx, "prod-1").Return(nil)

		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), productRepo)
		require.NoError(t, uc.DeleteProduct(ctx, "prod-1"))
		productRepo.AssertExpectations(t)
	})

	t.Run("missing product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		productRepo.On("Delete", ctx, "ghost").Return(repository.ErrNotFound)

		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), productRepo)
		err := uc.DeleteProduct(ctx, "ghost")

		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestAdminUsecase_ImportUser(t *testing.T) {
	ctx := context.Background()

	// ハッシュ済みcredentialはそのまま保存される（再ハッシュしない）
	t.Run("stores hash verbatim", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		creditRepo := new(MockCreditAccountRepository)

		prehashed := "$2b$12$abcdefghijklmnopqrstuv"

		userRepo.On("FindByEmail", ctx, "seed@example.com").
			Return(model.User{}, repository.ErrNotFound)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
			return u.PasswordHash == prehashed && u.Email == "seed@example.com"
		})).Return("user-7", nil)
		creditRepo.On("CreateIfAbsent", ctx, model.NewCreditAccount("user-7")).
			Return(model.NewCreditAccount("user-7"), nil)

		uc := usecase.NewAdminUsecase(userRepo, creditRepo, new(MockProductRepository))
		out, err := uc.ImportUser(ctx, usecase.ImportUserInput{
			Name:         "Seed",
			Email:        "seed@example.com",
			PasswordHash: prehashed,
			IsActive:     true,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-7", out.ID)
		userRepo.AssertExpectations(t)
		creditRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "dup@example.com").
			Return(model.User{ID: "user-1"}, nil)

		uc := usecase.NewAdminUsecase(userRepo, new(MockCreditAccountRepository), new(MockProductRepository))
		_, err := uc.ImportUser(ctx, usecase.ImportUserInput{
			Email:        "dup@example.com",
			PasswordHash: "$2b$12$x",
		})

		assertHTTPError(t, err, http.StatusBadRequest)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing hash", func(t *testing.T) {
		uc := usecase.NewAdminUsecase(new(MockUserRepository), new(MockCreditAccountRepository), new(MockProductRepository))
		_, err := uc.ImportUser(ctx, usecase.ImportUserInput{Email: "x@example.com"})
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}
