package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
)

// ==================== CatalogService 商品目录 ====================

// ImageRemover 删除已上传的商品图片
type ImageRemover interface {
	Delete(ctx context.Context, url string) error
}

// CatalogService 分类与商品的查询和后台维护
type CatalogService struct {
	store  *repository.Store
	images ImageRemover
}

// NewCatalogService 创建目录服务，images 为 nil 时不清理被替换的图片
func NewCatalogService(store *repository.Store, images ImageRemover) *CatalogService {
	return &CatalogService{store: store, images: images}
}

// 价格区间 [min, max)
var priceBuckets = map[string][2]*decimal.Decimal{
	"under25": {nil, decimalPtr(25)},
	"25to50":  {decimalPtr(25), decimalPtr(50)},
	"50to100": {decimalPtr(50), decimalPtr(100)},
	"over100": {decimalPtr(100), nil},
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// ==================== 查询 ====================

// ListCategories 按展示顺序返回全部分类
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.store.Categories.List(ctx)
}

// ListProducts 商品列表
// 分类 slug 不存在时返回空列表，未知排序按默认排序
func (s *CatalogService) ListProducts(ctx context.Context, query *dto.ProductListQuery) ([]model.Product, error) {
	filter := repository.ProductFilter{
		CategorySlug: query.Category,
		Featured:     query.Featured,
		Bestseller:   query.Bestseller,
		Sort:         query.Sort,
		Limit:        query.Limit,
	}
	if bucket, ok := priceBuckets[query.Price]; ok {
		filter.MinPrice = bucket[0]
		filter.MaxPrice = bucket[1]
	}

	products, err := s.store.Products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	return products, nil
}

// GetProduct 商品详情（含分类）
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.store.Products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询商品失败: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ==================== 商品维护（后台） ====================

// CreateProduct 创建商品
func (s *CatalogService) CreateProduct(ctx context.Context, req *dto.CreateProductReq) (*model.Product, error) {
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:                 req.Name,
		Description:          req.Description,
		AgeRange:             req.AgeRange,
		Price:                req.Price.Round(2),
		StockQuantity:        req.StockQuantity,
		CategoryID:           req.CategoryID,
		ImageURLs:            datatypes.JSONSlice[string](req.ImageURLs),
		SafetyCertifications: datatypes.JSONSlice[string](req.SafetyCertifications),
		Featured:             req.Featured,
		Bestseller:           req.Bestseller,
		AverageRating:        decimal.Zero,
	}

	if err := s.store.Products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("创建商品失败: %w", err)
	}
	return s.GetProduct(ctx, product.ID)
}

// UpdateProduct 部分更新商品，请求中为 nil 的字段保持不变
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, req *dto.UpdateProductReq) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.AgeRange != nil {
		product.AgeRange = *req.AgeRange
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		product.Price = req.Price.Round(2)
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = req.CategoryID
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	var droppedImages []string
	if req.ImageURLs != nil {
		droppedImages = missingFrom(product.ImageURLs, req.ImageURLs)
		product.ImageURLs = req.ImageURLs
	}
	if req.SafetyCertifications != nil {
		product.SafetyCertifications = req.SafetyCertifications
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Bestseller != nil {
		product.Bestseller = *req.Bestseller
	}

	product.Category = nil
	if err := s.store.Products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("更新商品失败: %w", err)
	}
	s.removeImages(ctx, droppedImages)
	return s.GetProduct(ctx, id)
}

// removeImages 商品已保存后再删除不再引用的图片，失败只记录日志
func (s *CatalogService) removeImages(ctx context.Context, urls []string) {
	if s.images == nil {
		return
	}
	for _, url := range urls {
		if err := s.images.Delete(ctx, url); err != nil {
			zap.L().Warn("清理商品图片失败", zap.String("url", url), zap.Error(err))
		}
	}
}

// missingFrom 返回 before 中不在 after 里的元素
func missingFrom(before, after []string) []string {
	kept := make(map[string]struct{}, len(after))
	for _, v := range after {
		kept[v] = struct{}{}
	}
	var missing []string
	for _, v := range before {
		if _, ok := kept[v]; !ok {
			missing = append(missing, v)
		}
	}
	return missing
}

// DeleteProduct 删除商品
// 同一事务内清理购物车和心愿单中的该商品，商品本身软删除，历史订单明细保留快照
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		product, err := tx.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		if err := tx.Cart.DeleteByProduct(ctx, id); err != nil {
			return fmt.Errorf("清理购物车失败: %w", err)
		}
		if err := tx.Wishlist.DeleteByProduct(ctx, id); err != nil {
			return fmt.Errorf("清理心愿单失败: %w", err)
		}
		return tx.Products.Delete(ctx, id)
	})
}

// ==================== 分类维护（后台） ====================

// CreateCategory 创建分类，slug 唯一
func (s *CatalogService) CreateCategory(ctx context.Context, req *dto.CreateCategoryReq) (*model.Category, error) {
	exists, err := s.store.Categories.ExistsBySlug(ctx, req.Slug, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugExists
	}

	category := &model.Category{
		Slug:         req.Slug,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.store.Categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}
	return category, nil
}

// UpdateCategory 部分更新分类
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateCategoryReq) (*model.Category, error) {
	category, err := s.store.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		exists, err := s.store.Categories.ExistsBySlug(ctx, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugExists
		}
		category.Slug = *req.Slug
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ImageURL != nil {
		category.ImageURL = *req.ImageURL
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := s.store.Categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("更新分类失败: %w", err)
	}
	return category, nil
}

// DeleteCategory 删除分类，先解除商品关联
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		category, err := tx.Categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}

		if _, err := tx.Products.DetachCategory(ctx, id); err != nil {
			return fmt.Errorf("解除商品分类失败: %w", err)
		}
		return tx.Categories.Delete(ctx, id)
	})
}

// ==================== 内部方法 ====================

func (s *CatalogService) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.store.Categories.GetByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ValidationError("Price must be greater than 0")
	}
	return nil
}
