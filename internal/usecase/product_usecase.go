package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"brackk/internal/domain/model"
	repo "brackk/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

const (
	defaultProductLimit = 50
	maxProductLimit     = 100
)

// List は公開商品一覧。limit未指定は50件。
func (u *ProductUsecase) List(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = defaultProductLimit
	}
	if limit > maxProductLimit {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	products, err := u.productRepo.List(ctx, limit)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID string) (model.Product, error) {
	if productID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	ImageURL    string
	Category    string
	InStock     bool
}

// AdminCreate は商品登録（admin guardを通った後に呼ばれる）。
func (u *ProductUsecase) AdminCreate(ctx context.Context, in CreateProductInput) (string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return "", NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.Price < 0 {
		return "", NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	id, err := u.productRepo.Create(ctx, model.Product{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		InStock:     in.InStock,
	})
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return id, nil
}
