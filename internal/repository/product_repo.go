package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ingaa_store/internal/model"
)

// ==================== 接口定义 ====================

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// 基础 CRUD
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	// 评分聚合
	UpdateRating(ctx context.Context, id int64, average decimal.Decimal, count int64) error

	// 分类删除前解除关联
	DetachCategory(ctx context.Context, categoryID int64) (int64, error)
}

// ==================== 过滤条件 ====================

// 排序方式
const (
	ProductSortFeatured  = "featured"
	ProductSortNewest    = "newest"
	ProductSortPriceLow  = "price-low"
	ProductSortPriceHigh = "price-high"
	ProductSortRating    = "rating"
)

// ProductFilter 商品过滤条件
type ProductFilter struct {
	CategorySlug string
	Featured     bool
	Bestseller   bool
	MinPrice     *decimal.Decimal // 含
	MaxPrice     *decimal.Decimal // 不含
	Sort         string
	Limit        int
}

// ==================== 仓储实现 ====================

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

// GetByID 获取商品（含分类），已删除或不存在返回 nil
func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// Delete 软删除
func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	var products []model.Product

	query := r.db.WithContext(ctx).Model(&model.Product{}).Preload("Category")

	if filter.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Featured {
		query = query.Where("products.featured = ?", true)
	}
	if filter.Bestseller {
		query = query.Where("products.bestseller = ?", true)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price < ?", *filter.MaxPrice)
	}

	switch filter.Sort {
	case ProductSortNewest:
		query = query.Order("products.created_at DESC")
	case ProductSortPriceLow:
		query = query.Order("products.price ASC").Order("products.created_at DESC")
	case ProductSortPriceHigh:
		query = query.Order("products.price DESC").Order("products.created_at DESC")
	case ProductSortRating:
		query = query.
			Order("products.average_rating DESC").
			Order("products.review_count DESC").
			Order("products.created_at DESC")
	default:
		query = query.Order("products.featured DESC").Order("products.created_at DESC")
	}
	query = query.Order("products.id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&products).Error
	return products, err
}

// ListAll 导出用，按 ID 升序
func (r *productRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *productRepo) UpdateRating(ctx context.Context, id int64, average decimal.Decimal, count int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"average_rating": average,
			"review_count":   count,
		}).Error
}

func (r *productRepo) DetachCategory(ctx context.Context, categoryID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil)
	return result.RowsAffected, result.Error
}
