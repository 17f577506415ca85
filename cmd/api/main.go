package main

import (
	"time"

	"brackk/internal/config"
	"brackk/internal/handler"
	"brackk/internal/infra/db"
	infradocstore "brackk/internal/infra/docstore"
	infrarepo "brackk/internal/infra/repository"
	"brackk/internal/server"
	"brackk/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(subjectID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envは無くてもよい（環境変数とデフォルトで動く）
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := infradocstore.Migrate(gormDB); err != nil {
		panic(err)
	}

	//ドキュメントストアとRepository生成
	store := infradocstore.NewGormStore(gormDB)

	userRepo := infrarepo.NewUserDocRepository(store)
	productRepo := infrarepo.NewProductDocRepository(store)
	cartItemRepo := infrarepo.NewCartItemDocRepository(store)
	orderRepo := infrarepo.NewOrderDocRepository(store)
	creditRepo := infrarepo.NewCreditAccountDocRepository(store)
	requestRepo := infrarepo.NewCreditIncreaseRequestDocRepository(store)
	planRepo := infrarepo.NewPlanDocRepository(store)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{
		secret:    []byte(cfg.SecretKey),
		accessTTL: cfg.AccessTokenTTL,
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, creditRepo, hasher, verifier, issuer, clock)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, creditRepo, cartItemRepo)
	creditUC := usecase.NewCreditUsecase(creditRepo, requestRepo)
	planUC := usecase.NewPlanUsecase(planRepo)
	adminUC := usecase.NewAdminUsecase(userRepo, creditRepo, productRepo)

	//Handler生成
	handlers := server.Handlers{
		Health:  handler.NewHealthHandler(store),
		Auth:    handler.NewAuthHandler(authUC),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(orderUC),
		Credit:  handler.NewCreditHandler(creditUC),
		Plan:    handler.NewPlanHandler(planUC),
		Admin:   handler.NewAdminHandler(adminUC),
	}

	//Server起動
	e := server.New(cfg, userRepo, handlers)
	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}
