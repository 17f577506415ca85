package model

type OrderStatus string

// statusは現状 "placed" のみ。以降の遷移は未実装のまま保持する。
const OrderStatusPlaced OrderStatus = "placed"

type Order struct {
	ID          string      `json:"id,omitempty"`
	UserID      string      `json:"user_id"`
	Items       []CartItem  `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
}
