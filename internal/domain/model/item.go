package model

import (
	"fmt"
	"time"
)

type ItemKind string

const (
	ItemKindBook  ItemKind = "BOOK"
	ItemKindAlbum ItemKind = "ALBUM"
)

// 商品。Kindで種別を区別する（共通の価格・在庫列＋種別ごとの列）
type Item struct {
	ID    int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind  ItemKind `gorm:"type:varchar(20);not null;index" json:"kind"`
	Name  string   `gorm:"type:varchar(255);not null" json:"name"`
	Price int64    `gorm:"not null" json:"price"`
	Stock int64    `gorm:"not null" json:"stock"`

	// 楽観ロック用のバージョン。保存時に永続化層が+1する
	Version int64 `gorm:"not null;default:0" json:"version"`

	// BOOK用
	Author string `gorm:"type:varchar(255)" json:"author,omitempty"`
	ISBN   string `gorm:"type:varchar(40)" json:"isbn,omitempty"`

	// ALBUM用
	Artist string `gorm:"type:varchar(255)" json:"artist,omitempty"`
	Label  string `gorm:"type:varchar(255)" json:"label,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// InsufficientStockError は要求数が在庫を超えたときのエラー
type InsufficientStockError struct {
	ItemID    int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("need more stock: item=%d requested=%d available=%d",
		e.ItemID, e.Requested, e.Available)
}

// RemoveStock は在庫を減らす。足りなければ何も変えずにエラー
func (i *Item) RemoveStock(count int64) error {
	if count > i.Stock {
		return &InsufficientStockError{
			ItemID:    i.ID,
			Requested: count,
			Available: i.Stock,
		}
	}
	i.Stock -= count
	return nil
}

// AddStock は在庫を戻す（キャンセル時）。上限チェックはしない
func (i *Item) AddStock(count int64) {
	i.Stock += count
}
