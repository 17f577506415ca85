package repository

import (
	"context"

	"brackk/internal/domain/model"
)

type CreditAccountRepository interface {
	FindByUserID(ctx context.Context, userID string) (model.CreditAccount, error)

	// 無ければ作る。user_idのunique制約付きupsertなので
	// 同時に呼ばれても1ユーザー1アカウントを超えない。
	CreateIfAbsent(ctx context.Context, acct model.CreditAccount) (model.CreditAccount, error)

	// credit_usedへamountを加算する。加算後にcredit_limitを超えるなら
	// 何も変えずfalse（与信チェックと消費を1回の条件付き更新で行う）。
	AddUsage(ctx context.Context, userID string, amount float64) (bool, error)

	// 指定項目だけ更新（管理者用：credit_limit / credit_used / billing_day）。
	SetFields(ctx context.Context, userID string, fields map[string]any) error
}

type CreditIncreaseRequestRepository interface {
	Create(ctx context.Context, req model.CreditIncreaseRequest) (string, error)
}
