package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ingaa_store/internal/model"
)

// WishlistRepository 心愿单仓库
type WishlistRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	Find(ctx context.Context, userID, productID int64) (*model.WishlistItem, error)
	Create(ctx context.Context, item *model.WishlistItem) error
	Delete(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) error
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓库
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// ListByUser 最近加入的在前
func (r *wishlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (r *wishlistRepository) Find(ctx context.Context, userID, productID int64) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *wishlistRepository) Create(ctx context.Context, item *model.WishlistItem) error {
	return r.db.WithContext(ctx).Omit("Product").Create(item).Error
}

func (r *wishlistRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.WishlistItem{}, id).Error
}

func (r *wishlistRepository) DeleteByProduct(ctx context.Context, productID int64) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.WishlistItem{}).Error
}
