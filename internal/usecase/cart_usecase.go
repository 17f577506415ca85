package usecase

import (
	"context"
	"errors"
	"net/http"

	"brackk/internal/domain/model"
	repo "brackk/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
}

// DI
func NewCartUsecase(cartItemRepo repo.CartItemRepository) *CartUsecase {
	return &CartUsecase{cartItemRepo: cartItemRepo}
}

type AddCartInput struct {
	UserID    string
	ProductID string
	Quantity  int64
}

// 既存行を更新したときは status のみ、新規作成時は id のみ返す。
type AddCartOutput struct {
	Status string `json:"status,omitempty"`
	ID     string `json:"id,omitempty"`
}

// Add はカート追加。(user_id, product_id) につき1行のupsertで、
// 既存行があれば数量を「最新の値」で置き換える（加算しない）。
func (u *CartUsecase) Add(ctx context.Context, subjectID string, in AddCartInput) (AddCartOutput, error) {
	if in.UserID != subjectID {
		return AddCartOutput{}, NewHTTPError(http.StatusForbidden, "cannot modify another user's cart")
	}
	if in.ProductID == "" {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	existing, err := u.cartItemRepo.FindByUserAndProduct(ctx, in.UserID, in.ProductID)
	if err == nil {
		if err := u.cartItemRepo.UpdateQuantity(ctx, existing.ID, in.Quantity); err != nil {
			return AddCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return AddCartOutput{Status: "updated"}, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return AddCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	id, err := u.cartItemRepo.Create(ctx, model.CartItem{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return AddCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return AddCartOutput{ID: id}, nil
}

// List は自分のカート明細を返す。
func (u *CartUsecase) List(ctx context.Context, userID string) ([]model.CartItem, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
