package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"ingaa_store/internal/model"
)

// ==================== 请求 DTO ====================

// ProductListQuery 商品列表查询参数
type ProductListQuery struct {
	Category   string `form:"category"`
	Featured   bool   `form:"featured"`
	Bestseller bool   `form:"bestseller"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Price      string `form:"price" binding:"omitempty,oneof=all under25 25to50 50to100 over100"`
	Sort       string `form:"sort"` // featured | newest | price-low | price-high | rating，未知值按 featured
}

// CreateProductReq 创建商品
type CreateProductReq struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	AgeRange    string          `json:"age_range" binding:"max=50"`
	Price       decimal.Decimal `json:"price"` // 字符串或数字均可，"19.99"
	CategoryID  *int64          `json:"category_id"`

	StockQuantity int `json:"stock_quantity" binding:"gte=0"`

	ImageURLs            []string `json:"image_urls"`
	SafetyCertifications []string `json:"safety_certifications"`

	Featured   bool `json:"featured"`
	Bestseller bool `json:"bestseller"`
}

// UpdateProductReq 部分更新，nil 字段不修改
type UpdateProductReq struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description,omitempty"`
	AgeRange    *string          `json:"age_range,omitempty" binding:"omitempty,max=50"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CategoryID  *int64           `json:"category_id,omitempty"`

	StockQuantity *int `json:"stock_quantity,omitempty" binding:"omitempty,gte=0"`

	ImageURLs            []string `json:"image_urls,omitempty"`
	SafetyCertifications []string `json:"safety_certifications,omitempty"`

	Featured   *bool `json:"featured,omitempty"`
	Bestseller *bool `json:"bestseller,omitempty"`
}

// ==================== 响应 DTO ====================

// ProductResp 商品
type ProductResp struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	AgeRange    string        `json:"age_range"`
	Price       string        `json:"price"`
	CategoryID  *int64        `json:"category_id"`
	Category    *CategoryResp `json:"category"`

	StockQuantity int  `json:"stock_quantity"`
	InStock       bool `json:"in_stock"`

	ImageURLs            []string `json:"image_urls"`
	SafetyCertifications []string `json:"safety_certifications"`

	Featured      bool   `json:"featured"`
	Bestseller    bool   `json:"bestseller"`
	AverageRating string `json:"average_rating"`
	ReviewCount   int    `json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProductResp 转换
func NewProductResp(p *model.Product) *ProductResp {
	if p == nil {
		return nil
	}
	return &ProductResp{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		AgeRange:             p.AgeRange,
		Price:                p.Price.StringFixed(2),
		CategoryID:           p.CategoryID,
		Category:             NewCategoryResp(p.Category),
		StockQuantity:        p.StockQuantity,
		InStock:              p.InStock(),
		ImageURLs:            nonNilStrings(p.ImageURLs),
		SafetyCertifications: nonNilStrings(p.SafetyCertifications),
		Featured:             p.Featured,
		Bestseller:           p.Bestseller,
		AverageRating:        p.AverageRating.StringFixed(2),
		ReviewCount:          p.ReviewCount,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// NewProductList 转换列表，空列表输出 []
func NewProductList(products []model.Product) []*ProductResp {
	list := make([]*ProductResp, 0, len(products))
	for i := range products {
		list = append(list, NewProductResp(&products[i]))
	}
	return list
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
