package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_RemoveStock(t *testing.T) {
	item := Item{ID: 1, Kind: ItemKindBook, Name: "JPA1 BOOK", Price: 10000, Stock: 10}

	err := item.RemoveStock(2)

	assert.NoError(t, err)
	assert.Equal(t, int64(8), item.Stock)
}

func TestItem_RemoveStock_Insufficient(t *testing.T) {
	item := Item{ID: 1, Kind: ItemKindBook, Name: "JPA1 BOOK", Price: 10000, Stock: 10}

	err := item.RemoveStock(11)

	var ise *InsufficientStockError
	if assert.ErrorAs(t, err, &ise) {
		assert.Equal(t, int64(1), ise.ItemID)
		assert.Equal(t, int64(11), ise.Requested)
		assert.Equal(t, int64(10), ise.Available)
	}
	assert.Contains(t, err.Error(), "need more stock")

	//失敗時は在庫が変わらない
	assert.Equal(t, int64(10), item.Stock)
}

func TestItem_RemoveStock_ExactlyAll(t *testing.T) {
	item := Item{ID: 1, Stock: 3}

	err := item.RemoveStock(3)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), item.Stock)
}

func TestItem_AddStock(t *testing.T) {
	item := Item{ID: 1, Stock: 8}

	item.AddStock(2)

	assert.Equal(t, int64(10), item.Stock)
}
