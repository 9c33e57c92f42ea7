package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
)

// ==================== 演示数据 ====================

type seedProduct struct {
	name           string
	description    string
	categorySlug   string
	price          string
	stock          int
	ageRange       string
	featured       bool
	bestseller     bool
	certifications []string
}

var seedCategories = []model.Category{
	{Slug: "nursery", Name: "Nursery", Description: "Cribs, bassinets and everything for a calm nursery", DisplayOrder: 1},
	{Slug: "feeding", Name: "Feeding", Description: "Bottles, bibs and high chairs", DisplayOrder: 2},
	{Slug: "clothing", Name: "Clothing", Description: "Soft organic clothing for every season", DisplayOrder: 3},
	{Slug: "toys", Name: "Toys", Description: "Safe toys for learning and play", DisplayOrder: 4},
}

var seedProducts = []seedProduct{
	{"Convertible Wooden Crib", "Solid pine crib that converts to a toddler bed.", "nursery", "349.99", 12, "0-4 years", true, true, []string{"JPMA", "GREENGUARD Gold"}},
	{"Organic Cotton Swaddle Set", "Set of three breathable muslin swaddles.", "nursery", "34.99", 80, "0-6 months", true, false, []string{"GOTS"}},
	{"Glass Baby Bottle 4-Pack", "Anti-colic borosilicate glass bottles.", "feeding", "29.99", 45, "0-12 months", false, true, []string{"BPA Free"}},
	{"Silicone Bib Duo", "Waterproof bibs with a deep crumb catcher.", "feeding", "14.99", 6, "6 months+", false, false, []string{"FDA Food Grade"}},
	{"Adjustable High Chair", "Grows with your child from six months to six years.", "feeding", "129.00", 0, "6 months-6 years", true, false, []string{"JPMA"}},
	{"Footed Sleeper 2-Pack", "Zip-up organic cotton sleepers.", "clothing", "24.50", 60, "0-24 months", false, true, []string{"GOTS", "OEKO-TEX"}},
	{"Knit Cardigan", "Hand-knit merino cardigan.", "clothing", "42.00", 8, "6-24 months", false, false, []string{"OEKO-TEX"}},
	{"Stacking Rings", "Classic rainbow stacking toy made of beech wood.", "toys", "19.99", 100, "12 months+", true, false, []string{"ASTM F963", "CE"}},
	{"Activity Play Gym", "Padded play mat with detachable hanging toys.", "toys", "89.99", 20, "0-12 months", false, true, []string{"ASTM F963"}},
}

// SeedResult 本次新增的数据条数
type SeedResult struct {
	Categories int
	Products   int
}

// SeedService 写入演示分类与商品，可重复执行
type SeedService struct {
	store *repository.Store
}

// NewSeedService 创建种子数据服务
func NewSeedService(store *repository.Store) *SeedService {
	return &SeedService{store: store}
}

// Seed 分类按 slug、商品按名称跳过已存在的数据
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		categoryIDs := make(map[string]int64, len(seedCategories))
		for _, c := range seedCategories {
			existing, err := tx.Categories.GetBySlug(ctx, c.Slug)
			if err != nil {
				return err
			}
			if existing != nil {
				categoryIDs[c.Slug] = existing.ID
				continue
			}

			category := c
			if err := tx.Categories.Create(ctx, &category); err != nil {
				return fmt.Errorf("写入分类 %s 失败: %w", c.Slug, err)
			}
			categoryIDs[c.Slug] = category.ID
			result.Categories++
		}

		for _, p := range seedProducts {
			exists, err := tx.Products.ExistsByName(ctx, p.name)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			categoryID := categoryIDs[p.categorySlug]
			product := &model.Product{
				Name:                 p.name,
				Description:          p.description,
				AgeRange:             p.ageRange,
				Price:                decimal.RequireFromString(p.price),
				StockQuantity:        p.stock,
				CategoryID:           &categoryID,
				ImageURLs:            []string{},
				SafetyCertifications: p.certifications,
				Featured:             p.featured,
				Bestseller:           p.bestseller,
				AverageRating:        decimal.Zero,
			}
			if err := tx.Products.Create(ctx, product); err != nil {
				return fmt.Errorf("写入商品 %s 失败: %w", p.name, err)
			}
			result.Products++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("演示数据写入完成",
		zap.Int("categories", result.Categories),
		zap.Int("products", result.Products),
	)
	return result, nil
}
