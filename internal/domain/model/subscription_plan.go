package model

type SubscriptionPlan struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	PricePerMonth float64  `json:"price_per_month"`
	Features      []string `json:"features"`
	IsActive      bool     `json:"is_active"`
}
