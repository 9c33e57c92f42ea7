package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ingaa_store/internal/model"
)

// ==================== 过滤条件 ====================

// OrderFilter 订单过滤条件
type OrderFilter struct {
	UserID int64
	Status string
	Limit  int
}

// ==================== OrderRepository 订单仓库 ====================

// OrderRepository 订单仓库接口
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByIDWithRelations(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// ==================== 实现 ====================

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create 订单头与明细一并写入
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Omit("User").Create(order).Error
}

// GetByIDWithRelations 附带明细与买家
func (r *orderRepository) GetByIDWithRelations(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("User").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List 最新订单在前
func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	var orders []model.Order

	db := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})

	// 管理端列表附带买家
	if filter.UserID > 0 {
		db = db.Where("user_id = ?", filter.UserID)
	} else {
		db = db.Preload("User")
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}

	err := db.Order("created_at DESC").Order("id DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatus 返回受影响行数，0 表示订单不存在
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
