package model

// カート明細。(user_id, product_id) につき1件（追加時はupsert）。
type CartItem struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}
