package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// 注文確定の同時実行制御の方式
type OrderStrategy string

const (
	StrategyPessimistic OrderStrategy = "pessimistic"
	StrategyOptimistic  OrderStrategy = "optimistic"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	JWTSecret string // JWT署名シークレット

	// 注文確定の方式（pessimistic / optimistic）
	OrderStrategy OrderStrategy

	// 排他ロック取得待ちの上限
	LockTimeout time.Duration

	// 楽観ロック競合時の再試行上限と間隔
	OrderMaxRetries   int
	OrderRetryBackoff time.Duration
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := mustAtoi("POSTGRES_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		OrderStrategy: OrderStrategy(getenv("ORDER_STRATEGY", string(StrategyPessimistic))),

		LockTimeout:       time.Duration(atoiDefault("LOCK_TIMEOUT_MS", 10000)) * time.Millisecond,
		OrderMaxRetries:   atoiDefault("ORDER_MAX_RETRIES", 10),
		OrderRetryBackoff: time.Duration(atoiDefault("ORDER_RETRY_BACKOFF_MS", 100)) * time.Millisecond,
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.OrderStrategy {
	case StrategyPessimistic, StrategyOptimistic:
	default:
		return Config{}, fmt.Errorf("ORDER_STRATEGY must be pessimistic or optimistic")
	}
	if cfg.OrderMaxRetries < 1 {
		return Config{}, fmt.Errorf("ORDER_MAX_RETRIES must be >= 1")
	}

	return cfg, nil
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
