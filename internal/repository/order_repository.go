package repository

import (
	"context"

	"app/internal/domain/model"
)

// 注文検索の条件（会員名・ステータスで絞り込み）
type OrderSearch struct {
	MemberName string
	Status     string
	Page       int
	Limit      int
}

type OrderRepository interface {
	// Create は注文と明細をまとめて永続化する
	Create(ctx context.Context, order model.Order) (int64, error)

	// FindByID は明細まで読み込んだ注文を返す（遅延読み込みはしない）
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	Search(ctx context.Context, s OrderSearch) ([]model.Order, int64, error)
}
