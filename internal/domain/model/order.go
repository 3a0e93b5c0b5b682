package model

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// キャンセル済み注文への再キャンセル
var ErrOrderAlreadyCancelled = errors.New("order already cancelled")

type Order struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Number   string `gorm:"type:varchar(64);not null;uniqueIndex" json:"number"`
	MemberID int64  `gorm:"not null;index" json:"member_id"`

	// 配送先スナップショット（注文が所有する）
	Delivery Delivery `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`

	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	OrderedAt time.Time   `gorm:"not null" json:"ordered_at"`

	// 明細は注文が所有し、保存時にまとめて永続化する
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// NewOrder は PLACED 状態の注文を組み立てる。
// 在庫の減算はここでは行わない（呼び出し側が事前に済ませる約束）
func NewOrder(number string, member Member, delivery Delivery, orderedAt time.Time, items ...OrderItem) Order {
	return Order{
		Number:    number,
		MemberID:  member.ID,
		Delivery:  delivery,
		Status:    OrderStatusPlaced,
		OrderedAt: orderedAt,
		Items:     items,
	}
}

// TotalPrice は明細小計の合計。常に明細から導出する
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.Subtotal()
	}
	return total
}

// Cancel は PLACED -> CANCELLED の一方向遷移。
// 在庫の戻しは同一トランザクション内でusecaseが行う
func (o *Order) Cancel() error {
	if o.Status == OrderStatusCancelled {
		return ErrOrderAlreadyCancelled
	}
	o.Status = OrderStatusCancelled
	return nil
}
