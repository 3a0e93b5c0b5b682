package repository

import (
	"context"
	"time"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	members repo.MemberRepository
	items   repo.ItemRepository
	orders  repo.OrderRepository
}

func (r *txReposGorm) Members() repo.MemberRepository { return r.members }
func (r *txReposGorm) Items() repo.ItemRepository     { return r.items }
func (r *txReposGorm) Orders() repo.OrderRepository   { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB

	// 排他ロック取得待ちの上限
	lockTimeout time.Duration
}

func NewTxManagerGorm(db *gorm.DB, lockTimeout time.Duration) *TxManagerGorm {
	return &TxManagerGorm{db: db, lockTimeout: lockTimeout}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			members: NewMemberGormRepository(tx),
			items:   NewItemGormRepository(tx, tm.lockTimeout),
			orders:  NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
