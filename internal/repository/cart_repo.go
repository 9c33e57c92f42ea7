package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ingaa_store/internal/model"
)

// ==================== CartRepository 购物车仓库 ====================

// CartRepository 购物车仓库接口
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error)
	ListByUserForUpdate(ctx context.Context, userID int64) ([]model.CartItem, error)
	GetByID(ctx context.Context, id int64) (*model.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID int64) (*model.CartItem, error)
	AddQuantity(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteByProduct(ctx context.Context, productID int64) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// ListByUser 购物车条目，附带商品及分类
func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// ListByUserForUpdate 结算时加行锁读取购物车 (PostgreSQL: SELECT ... FOR UPDATE)
func (r *cartRepository) ListByUserForUpdate(ctx context.Context, userID int64) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *cartRepository) GetByID(ctx context.Context, id int64) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *cartRepository) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// AddQuantity 单条语句完成加购合并，合并后的数量不超过 model.MaxCartItemQuantity:
// INSERT ... ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = LEAST(cart_items.quantity + excluded.quantity, max)
func (r *cartRepository) AddQuantity(ctx context.Context, userID, productID int64, quantity int) (*model.CartItem, error) {
	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  min(quantity, model.MaxCartItemQuantity),
	}
	// CASE 写法在 PostgreSQL 与 SQLite 上都可用
	merged := gorm.Expr(
		"CASE WHEN cart_items.quantity + excluded.quantity > ? THEN ? ELSE cart_items.quantity + excluded.quantity END",
		model.MaxCartItemQuantity, model.MaxCartItemQuantity,
	)
	err := r.db.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   merged,
				"updated_at": time.Now(),
			}),
		}).
		Create(item).Error
	if err != nil {
		return nil, err
	}
	return r.GetByUserAndProduct(ctx, userID, productID)
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *cartRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, id).Error
}

func (r *cartRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}

func (r *cartRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.CartItem{}).Error
}
