package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newItemTestBed() (*ItemUsecase, *ItemRepoMock) {
	tx := new(TxManagerMock)
	items := new(ItemRepoMock)
	tx.Repos = &TxReposMock{items: items}
	tx.On("WithinTx", mock.Anything).Return(nil)
	return NewItemUsecase(tx), items
}

func TestSaveItem_Success(t *testing.T) {
	uc, items := newItemTestBed()

	in := model.Item{Kind: model.ItemKindBook, Name: "JPA1 BOOK", Price: 10000, Stock: 100}
	items.On("Create", mock.Anything, in).Return(model.Item{ID: 10}, nil)

	id, err := uc.SaveItem(context.Background(), in)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), id)
	items.AssertExpectations(t)
}

func TestSaveItem_Validation(t *testing.T) {
	uc, items := newItemTestBed()

	cases := []model.Item{
		{Kind: model.ItemKindBook, Name: "", Price: 100, Stock: 1},
		{Kind: model.ItemKindBook, Name: "x", Price: -1, Stock: 1},
		{Kind: model.ItemKindBook, Name: "x", Price: 100, Stock: -1},
		{Kind: "VIDEO", Name: "x", Price: 100, Stock: 1},
	}

	for _, c := range cases {
		_, err := uc.SaveItem(context.Background(), c)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateItem_Success(t *testing.T) {
	uc, items := newItemTestBed()

	items.On("FindByID", mock.Anything, int64(10), repo.LockNone).
		Return(model.Item{ID: 10, Kind: model.ItemKindBook, Name: "old", Price: 1, Stock: 1, Version: 2}, nil)

	items.On("Save", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
		return it.Name == "JPA1 BOOK" && it.Price == 10000 && it.Stock == 100
	}), repo.LockNone).Return(nil)

	err := uc.UpdateItem(context.Background(), 10, "JPA1 BOOK", 10000, 100)

	assert.NoError(t, err)
	items.AssertExpectations(t)
}

func TestUpdateItem_NotFound(t *testing.T) {
	uc, items := newItemTestBed()

	items.On("FindByID", mock.Anything, int64(99), repo.LockNone).Return(model.Item{}, repo.ErrNotFound)

	err := uc.UpdateItem(context.Background(), 99, "x", 1, 1)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestListItems(t *testing.T) {
	uc, items := newItemTestBed()

	items.On("List", mock.Anything).Return([]model.Item{{ID: 1}, {ID: 2}}, nil)

	got, err := uc.ListItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
