package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"brackk/internal/domain/model"
	repo "brackk/internal/repository"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(subjectID string, now time.Time) (token string, expiresAt time.Time, err error)
}

// AuthUsecaseは会員登録・ログイン・本人情報の処理。
type AuthUsecase struct {
	userRepo   repo.UserRepository
	creditRepo repo.CreditAccountRepository
	hasher     PasswordHasher
	verifier   PasswordVerifier
	issuer     AccessTokenIssuer
	clock      Clock
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	creditRepo repo.CreditAccountRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		creditRepo: creditRepo,
		hasher:     hasher,
		verifier:   verifier,
		issuer:     issuer,
		clock:      clock,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

// /auth/register /auth/login 共通のトークン出力。
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type LoginInput struct {
	Email    string
	Password string
}

type MeOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// Register は会員登録を実行する。
// 入力credentialは常に平文として扱いハッシュ化する
// （「もうハッシュ済みか」のprefix判定はしない。seed投入はadminのimportを使う）。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (TokenOutput, error) {
	if !isValidEmailFormat(in.Email) {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if in.Password == "" {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "password required")
	}

	// email重複チェック（DB側のunique indexが最後の砦）
	_, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "email already registered")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	// is_admin/is_activeはリクエストから受け取らない
	userID, err := u.userRepo.Create(ctx, model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: hashed,
		Address:      in.Address,
		IsActive:     true,
		IsAdmin:      false,
	})
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 与信アカウントを同時に用意する
	if _, err := u.creditRepo.CreateIfAbsent(ctx, model.NewCreditAccount(userID)); err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.issueToken(userID)
}

// Login はメール・パスワードを照合してトークンを返す。
// どちらが間違っているかはあえて区別しない。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenOutput, error) {
	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "incorrect email or password")
		}
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "incorrect email or password")
	}

	// is_activeは登録後は参照しない（既存挙動の維持）
	return u.issueToken(user.ID)
}

// Me は認証済みユーザー自身のプロフィールを返す。
func (u *AuthUsecase) Me(ctx context.Context, userID string) (MeOutput, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return MeOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return MeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MeOutput{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		IsAdmin: user.IsAdmin,
	}, nil
}

func (u *AuthUsecase) issueToken(userID string) (TokenOutput, error) {
	token, _, err := u.issuer.Issue(userID, u.clock.Now())
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}
	return TokenOutput{AccessToken: token, TokenType: "bearer"}, nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}
