package usecase

import (
	"context"
	"errors"
	"net/http"

	"brackk/internal/domain/model"
	repo "brackk/internal/repository"
)

type OrderUsecase struct {
	orderRepo    repo.OrderRepository
	creditRepo   repo.CreditAccountRepository
	cartItemRepo repo.CartItemRepository
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	creditRepo repo.CreditAccountRepository,
	cartItemRepo repo.CartItemRepository,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:    orderRepo,
		creditRepo:   creditRepo,
		cartItemRepo: cartItemRepo,
	}
}

type PlaceOrderInput struct {
	UserID      string
	Items       []model.CartItem
	TotalAmount float64
}

type PlaceOrderOutput struct {
	ID     string            `json:"id"`
	Status model.OrderStatus `json:"status"`
}

// Place は与信枠を消費して注文を確定する。
// 与信のチェックと消費はAddUsage（条件付き更新）1回で行うので、
// 同時リクエストでも credit_used が credit_limit を超えることはない。
// 注文作成とカートクリアはその後に続く（トランザクションは張らない）。
func (u *OrderUsecase) Place(ctx context.Context, subjectID string, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if in.UserID != subjectID {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusForbidden, "cannot place for another user")
	}
	if in.TotalAmount < 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid total_amount")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	// 登録時に必ず作られるので通常ここでは見つかるはず
	if _, err := u.creditRepo.FindByUserID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "no credit account")
		}
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ok, err := u.creditRepo.AddUsage(ctx, in.UserID, in.TotalAmount)
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusPaymentRequired, "insufficient credit")
	}

	orderID, err := u.orderRepo.Create(ctx, model.Order{
		UserID:      in.UserID,
		Items:       in.Items,
		TotalAmount: in.TotalAmount,
		Status:      model.OrderStatusPlaced,
	})
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.cartItemRepo.DeleteByUserID(ctx, in.UserID); err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PlaceOrderOutput{ID: orderID, Status: model.OrderStatusPlaced}, nil
}

// ListMine は自分の注文を新しい順で返す。
func (u *OrderUsecase) ListMine(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// GetMine は注文詳細。他人の注文は「存在しない扱い」にする。
func (u *OrderUsecase) GetMine(ctx context.Context, userID string, orderID string) (model.Order, error) {
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if o.UserID != userID {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return o, nil
}
