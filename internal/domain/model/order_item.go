package model

import "time"

// 注文明細。注文時点の商品名・単価をスナップショットで持つ（以後不変）
type OrderItem struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID           int64     `gorm:"not null;index" json:"order_id"`
	ItemID            int64     `gorm:"not null;index" json:"item_id"`
	ItemNameSnapshot  string    `gorm:"type:varchar(255);not null" json:"item_name_snapshot"`
	UnitPriceSnapshot int64     `gorm:"not null" json:"unit_price_snapshot"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// NewOrderItem は商品の現在価格を取り込んで明細を作る
func NewOrderItem(item Item, unitPrice int64, quantity int64) OrderItem {
	return OrderItem{
		ItemID:            item.ID,
		ItemNameSnapshot:  item.Name,
		UnitPriceSnapshot: unitPrice,
		Quantity:          quantity,
	}
}

// Subtotal は明細の小計（単価×数量）
func (oi OrderItem) Subtotal() int64 {
	return oi.UnitPriceSnapshot * oi.Quantity
}
