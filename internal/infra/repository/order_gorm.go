package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// Create は注文と明細をまとめて永続化する（gormの関連経由）
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Search(ctx context.Context, s repo.OrderSearch) ([]model.Order, int64, error) {
	if s.Page <= 0 {
		s.Page = 1
	}
	if s.Limit <= 0 || s.Limit > 100 {
		s.Limit = 50
	}

	q := r.db.WithContext(ctx).Model(&model.Order{})

	//会員名 絞り込み（部分一致）
	if s.MemberName != "" {
		q = q.Joins("JOIN members ON members.id = orders.member_id").
			Where("members.name LIKE ?", "%"+s.MemberName+"%")
	}

	//status 絞り込み
	if s.Status != "" {
		q = q.Where("orders.status = ?", s.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.Order{}, 0, err
	}

	var orders []model.Order
	offset := (s.Page - 1) * s.Limit
	err := q.Preload("Items").
		Order("orders.id desc").
		Limit(s.Limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, 0, err
	}

	return orders, total, nil
}
