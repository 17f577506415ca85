package model

// 会員。ドキュメントストアの "user" コレクションに保存する。
// IDはストアが採番するuuid（jsonbの中には持たない）。
type User struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Address      string `json:"address,omitempty"`
	IsActive     bool   `json:"is_active"`
	IsAdmin      bool   `json:"is_admin"`
}
