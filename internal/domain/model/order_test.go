package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testMember() Member {
	return Member{
		ID:         1,
		Name:       "userA",
		PostalCode: "100-0001",
		Prefecture: "東京都",
		City:       "千代田区",
		Line1:      "1-1-1",
	}
}

func TestNewOrder_TotalPrice(t *testing.T) {
	member := testMember()
	book := Item{ID: 10, Kind: ItemKindBook, Name: "JPA1 BOOK", Price: 10000, Stock: 10}

	oi := NewOrderItem(book, book.Price, 2)
	order := NewOrder("ord-1", member, NewDelivery(member), time.Now(), oi)

	assert.Equal(t, OrderStatusPlaced, order.Status)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, int64(20000), order.TotalPrice())
}

func TestNewOrder_MultipleItems(t *testing.T) {
	member := testMember()
	book := Item{ID: 10, Kind: ItemKindBook, Name: "JPA1 BOOK", Price: 10000}
	album := Item{ID: 11, Kind: ItemKindAlbum, Name: "OST", Price: 20000}

	order := NewOrder("ord-2", member, NewDelivery(member), time.Now(),
		NewOrderItem(book, book.Price, 1),
		NewOrderItem(album, album.Price, 2),
	)

	assert.Equal(t, int64(10000+40000), order.TotalPrice())
}

func TestOrderItem_SnapshotIndependentOfPriceChange(t *testing.T) {
	book := Item{ID: 10, Name: "JPA1 BOOK", Price: 10000}

	oi := NewOrderItem(book, book.Price, 2)

	//後から商品価格が変わっても明細の単価は変わらない
	book.Price = 99999
	assert.Equal(t, int64(10000), oi.UnitPriceSnapshot)
	assert.Equal(t, int64(20000), oi.Subtotal())
}

func TestDelivery_SnapshotIndependentOfMemberChange(t *testing.T) {
	member := testMember()
	d := NewDelivery(member)

	member.City = "大阪市"

	assert.Equal(t, "千代田区", d.City)
}

func TestOrder_Cancel(t *testing.T) {
	member := testMember()
	order := NewOrder("ord-3", member, NewDelivery(member), time.Now())

	err := order.Cancel()

	assert.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, order.Status)
}

func TestOrder_Cancel_AlreadyCancelled(t *testing.T) {
	member := testMember()
	order := NewOrder("ord-4", member, NewDelivery(member), time.Now())

	assert.NoError(t, order.Cancel())

	err := order.Cancel()
	assert.ErrorIs(t, err, ErrOrderAlreadyCancelled)
	assert.Equal(t, OrderStatusCancelled, order.Status)
}
