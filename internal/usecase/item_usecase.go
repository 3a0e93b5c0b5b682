package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

type ItemUsecase struct {
	tx repo.TransactionManager
}

func NewItemUsecase(tx repo.TransactionManager) *ItemUsecase {
	return &ItemUsecase{tx: tx}
}

// SaveItem は商品を登録する（カタログ管理側の操作）
func (u *ItemUsecase) SaveItem(ctx context.Context, item model.Item) (int64, error) {
	if strings.TrimSpace(item.Name) == "" {
		return 0, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if item.Price < 0 {
		return 0, fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	if item.Stock < 0 {
		return 0, fmt.Errorf("%w: stock must be >= 0", ErrInvalidInput)
	}
	switch item.Kind {
	case model.ItemKindBook, model.ItemKindAlbum:
	default:
		return 0, fmt.Errorf("%w: invalid kind", ErrInvalidInput)
	}

	var id int64
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		created, err := r.Items().Create(ctx, item)
		if err != nil {
			return err
		}
		id = created.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateItem は名前・価格・在庫をまとめて更新する
func (u *ItemUsecase) UpdateItem(ctx context.Context, itemID int64, name string, price int64, stock int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrInvalidInput)
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := r.Items().FindByID(ctx, itemID, repo.LockNone)
		if err != nil {
			return err
		}

		item.Name = strings.TrimSpace(name)
		item.Price = price
		item.Stock = stock

		return r.Items().Save(ctx, &item, repo.LockNone)
	})
}

func (u *ItemUsecase) ListItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		is, err := r.Items().List(ctx)
		if err != nil {
			return err
		}
		items = is
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (u *ItemUsecase) FindOne(ctx context.Context, itemID int64) (model.Item, error) {
	var item model.Item
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		it, err := r.Items().FindByID(ctx, itemID, repo.LockNone)
		if err != nil {
			return err
		}
		item = it
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}
