package model

// 与信アカウント。1ユーザーにつき1件（user_idで一意）。
type CreditAccount struct {
	ID          string  `json:"id,omitempty"`
	UserID      string  `json:"user_id"`
	CreditLimit float64 `json:"credit_limit"`
	CreditUsed  float64 `json:"credit_used"`
	BillingDay  int     `json:"billing_day"`
}

const (
	DefaultCreditLimit = 5000.0
	DefaultBillingDay  = 1
)

// 登録時・初回参照時のデフォルトアカウント。
func NewCreditAccount(userID string) CreditAccount {
	return CreditAccount{
		UserID:      userID,
		CreditLimit: DefaultCreditLimit,
		CreditUsed:  0,
		BillingDay:  DefaultBillingDay,
	}
}

type CreditRequestStatus string

// 承認フローは未実装。作成時は常にpending。
const CreditRequestPending CreditRequestStatus = "pending"

type CreditIncreaseRequest struct {
	ID             string              `json:"id,omitempty"`
	UserID         string              `json:"user_id"`
	CurrentLimit   float64             `json:"current_limit"`
	RequestedLimit float64             `json:"requested_limit"`
	Status         CreditRequestStatus `json:"status"`
}
