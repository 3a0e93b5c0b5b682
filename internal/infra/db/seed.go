package db

import (
	"app/internal/domain/model"

	"gorm.io/gorm"
)

// SeedDemo はデモ用の初期データを入れる（SEED_DEMO=1のときだけ呼ぶ）。
// すでに商品があれば何もしない
func SeedDemo(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&model.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	member := model.Member{
		Name:       "userA",
		PostalCode: "100-0001",
		Prefecture: "東京都",
		City:       "千代田区",
		Line1:      "1-1-1",
	}
	if err := gdb.Create(&member).Error; err != nil {
		return err
	}

	books := []model.Item{
		{Kind: model.ItemKindBook, Name: "JPA1 BOOK", Price: 10000, Stock: 100, Author: "kim", ISBN: "978-0000000001"},
		{Kind: model.ItemKindBook, Name: "JPA2 BOOK", Price: 20000, Stock: 100, Author: "kim", ISBN: "978-0000000002"},
	}
	return gdb.Create(&books).Error
}
