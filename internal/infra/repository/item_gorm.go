package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lock_not_available（postgresのロック待ちタイムアウト）
const pgLockNotAvailable = "55P03"

type ItemGormRepository struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

func NewItemGormRepository(db *gorm.DB, lockTimeout time.Duration) *ItemGormRepository {
	return &ItemGormRepository{db: db, lockTimeout: lockTimeout}
}

func (r *ItemGormRepository) FindByID(ctx context.Context, id int64, lock repo.LockMode) (model.Item, error) {
	q := r.db.WithContext(ctx)

	if lock == repo.LockExclusive {
		// ロック待ちを無限にしない。SET LOCALなのでこのTx内だけ効く
		ms := r.lockTimeout.Milliseconds()
		if err := q.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", ms)).Error; err != nil {
			return model.Item{}, err
		}
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var item model.Item
	err := q.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if isLockTimeout(err) {
		return model.Item{}, repo.ErrLockTimeout
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *ItemGormRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemGormRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// Save は読み取り時のロック方式を尊重して更新する
func (r *ItemGormRepository) Save(ctx context.Context, item *model.Item, lock repo.LockMode) error {
	values := map[string]any{
		"name":    item.Name,
		"price":   item.Price,
		"stock":   item.Stock,
		"version": gorm.Expr("version + 1"),
	}

	q := r.db.WithContext(ctx).Model(&model.Item{})

	if lock == repo.LockOptimistic {
		//読み取り時点のバージョンと照合。他のコミットが先行していれば0行更新
		q = q.Where("id = ? AND version = ?", item.ID, item.Version)
	} else {
		q = q.Where("id = ?", item.ID)
	}

	res := q.Updates(values)
	if isLockTimeout(res.Error) {
		return repo.ErrLockTimeout
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if lock == repo.LockOptimistic {
			return repo.ErrOptimisticLock
		}
		return repo.ErrNotFound
	}

	item.Version++
	return nil
}

// 在庫戻し（キャンセル）
func (r *ItemGormRepository) RestoreStock(ctx context.Context, itemID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"stock":   gorm.Expr("stock + ?", qty),
			"version": gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgLockNotAvailable
	}
	return false
}
