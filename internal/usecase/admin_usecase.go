package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"brackk/internal/domain/model"
	repo "brackk/internal/repository"
)

// AdminUsecaseは管理者だけが触るユーザー・商品・与信操作。
type AdminUsecase struct {
	userRepo    repo.UserRepository
	creditRepo  repo.CreditAccountRepository
	productRepo repo.ProductRepository
}

// DI
func NewAdminUsecase(
	userRepo repo.UserRepository,
	creditRepo repo.CreditAccountRepository,
	productRepo repo.ProductRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		creditRepo:  creditRepo,
		productRepo: productRepo,
	}
}

// password_hashは外に出さない
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

func toUserSummary(u model.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Address:  u.Address,
		IsActive: u.IsActive,
		IsAdmin:  u.IsAdmin,
	}
}

func (u *AdminUsecase) ListUsers(ctx context.Context) ([]UserSummary, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]UserSummary, 0, len(users))
	for _, user := range users {
		out = append(out, toUserSummary(user))
	}
	return out, nil
}

// 部分更新なのでポインタで「指定された項目」だけ受ける
type UpdateUserInput struct {
	Name     *string
	IsAdmin  *bool
	IsActive *bool
}

// UpdateUser はユーザー属性の部分更新。昇格（is_admin=true）もここ。
func (u *AdminUsecase) UpdateUser(ctx context.Context, targetUserID string, in UpdateUserInput) (UserSummary, error) {
	if targetUserID == "" {
		return UserSummary{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.IsAdmin != nil {
		fields["is_admin"] = *in.IsAdmin
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if len(fields) == 0 {
		return UserSummary{}, NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	if err := u.userRepo.UpdateFields(ctx, targetUserID, fields); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserSummary{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return UserSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user, err := u.userRepo.FindByID(ctx, targetUserID)
	if err != nil {
		return UserSummary{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toUserSummary(user), nil
}

// ListProducts は在庫フラグに関わらず全商品を新しい順で返す。
func (u *AdminUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
	Category    *string
	InStock     *bool
}

// UpdateProduct は商品属性の部分更新。
func (u *AdminUsecase) UpdateProduct(ctx context.Context, productID string, in UpdateProductInput) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	fields := map[string]any{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "title required")
		}
		fields["title"] = title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		fields["price"] = *in.Price
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.InStock != nil {
		fields["in_stock"] = *in.InStock
	}
	if len(fields) == 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	if err := u.productRepo.UpdateFields(ctx, productID, fields); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *AdminUsecase) DeleteProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type SetCreditInput struct {
	CreditLimit *float64
	CreditUsed  *float64
	BillingDay  *int
}

// SetCredit は対象ユーザーの与信アカウントを直接書き換える。
func (u *AdminUsecase) SetCredit(ctx context.Context, targetUserID string, in SetCreditInput) (model.CreditAccount, error) {
	if targetUserID == "" {
		return model.CreditAccount{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	fields := map[string]any{}
	if in.CreditLimit != nil {
		if *in.CreditLimit < 0 {
			return model.CreditAccount{}, NewHTTPError(http.StatusBadRequest, "credit_limit must be >= 0")
		}
		fields["credit_limit"] = *in.CreditLimit
	}
	if in.CreditUsed != nil {
		if *in.CreditUsed < 0 {
			return model.CreditAccount{}, NewHTTPError(http.StatusBadRequest, "credit_used must be >= 0")
		}
		fields["credit_used"] = *in.CreditUsed
	}
	if in.BillingDay != nil {
		if *in.BillingDay < 1 || *in.BillingDay > 28 {
			return model.CreditAccount{}, NewHTTPError(http.StatusBadRequest, "billing_day must be 1-28")
		}
		fields["billing_day"] = *in.BillingDay
	}
	if len(fields) == 0 {
		return model.CreditAccount{}, NewHTTPError(http.StatusBadRequest, "no fields to update")
	}

	if err := u.creditRepo.SetFields(ctx, targetUserID, fields); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.CreditAccount{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.CreditAccount{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	acct, err := u.creditRepo.FindByUserID(ctx, targetUserID)
	if err != nil {
		return model.CreditAccount{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return acct, nil
}

type ImportUserInput struct {
	Name         string
	Email        string
	PasswordHash string
	Address      string
	IsActive     bool
	IsAdmin      bool
}

type ImportUserOutput struct {
	ID string `json:"id"`
}

// ImportUser はハッシュ済みcredentialを持つseedユーザーの明示的な取り込み口。
// 登録APIはprefixを見てハッシュ済みかを推測しない。信頼済みデータはここを通す。
func (u *AdminUsecase) ImportUser(ctx context.Context, in ImportUserInput) (ImportUserOutput, error) {
	if !isValidEmailFormat(in.Email) {
		return ImportUserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if in.PasswordHash == "" {
		return ImportUserOutput{}, NewHTTPError(http.StatusBadRequest, "password_hash required")
	}

	_, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return ImportUserOutput{}, NewHTTPError(http.StatusBadRequest, "email already registered")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return ImportUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	userID, err := u.userRepo.Create(ctx, model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Address:      in.Address,
		IsActive:     in.IsActive,
		IsAdmin:      in.IsAdmin,
	})
	if err != nil {
		return ImportUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.creditRepo.CreateIfAbsent(ctx, model.NewCreditAccount(userID)); err != nil {
		return ImportUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ImportUserOutput{ID: userID}, nil
}
