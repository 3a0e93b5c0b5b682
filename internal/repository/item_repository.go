package repository

import (
	"context"

	"app/internal/domain/model"
)

// LockMode は商品読み取り時のロック方式
type LockMode int

const (
	// ロックなしの読み取り
	LockNone LockMode = iota

	// 行の排他ロック（SELECT ... FOR UPDATE）。他トランザクションは
	// コミットかロールバックまで待たされる。取得待ちはタイムアウト付き
	LockExclusive

	// 楽観ロック。読み取り時点のVersionを保持し、Saveでバージョン照合する
	LockOptimistic
)

// 商品の永続化だけを約束。
type ItemRepository interface {
	// FindByID は指定のロック方式で商品を読む
	FindByID(ctx context.Context, id int64, lock LockMode) (model.Item, error)

	List(ctx context.Context) ([]model.Item, error)

	Create(ctx context.Context, item model.Item) (model.Item, error)

	// Save は読み取り時のロック方式を尊重して更新する。
	// LockOptimisticで読んだ商品はバージョン照合付きで更新し、
	// 不一致なら ErrOptimisticLock を返す
	Save(ctx context.Context, item *model.Item, lock LockMode) error

	// 在庫戻し（キャンセル時）。明細の数量ぶんだけ加算する
	RestoreStock(ctx context.Context, itemID int64, qty int64) error
}
