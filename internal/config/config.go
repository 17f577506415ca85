package config

import (
	"os"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（デフォルト8000）

	SecretKey      string        // JWT署名シークレット
	AccessTokenTTL time.Duration // アクセストークンの有効期限

	DatabaseURL string // あれば最優先で使う

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Loadは環境変数から設定を読む。
// 未設定の項目はdev向けデフォルトで埋める（SECRET_KEYのデフォルトは安全でない）。
func Load() Config {
	return Config{
		Port: getenv("PORT", "8000"),

		SecretKey:      getenv("SECRET_KEY", "dev-secret"),
		AccessTokenTTL: 24 * time.Hour,

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "brackk"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
