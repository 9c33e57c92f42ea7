package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// 库存预警阈值：0 < stock < LowStockThreshold 视为低库存
const LowStockThreshold = 10

// ==================== Category 商品分类 ====================

// Category 商品分类
type Category struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Slug         string `gorm:"size:100;uniqueIndex;not null"` // URL 中使用
	Name         string `gorm:"size:100;not null"`
	Description  string `gorm:"type:text"`
	ImageURL     string `gorm:"size:500"`
	DisplayOrder int    `gorm:"default:0;index"`

	AuditMixin
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}

// ==================== Product 商品 ====================

// Product 商品
type Product struct {
	BaseModel
	AuditMixin

	// 基本信息
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	AgeRange    string `gorm:"size:50"`

	// 价格与库存
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `gorm:"default:0;index"`

	// 分类
	CategoryID *int64    `gorm:"index"`
	Category   *Category `gorm:"foreignKey:CategoryID"`

	// 图片与安全认证（JSON 数组）
	ImageURLs            datatypes.JSONSlice[string]
	SafetyCertifications datatypes.JSONSlice[string]

	// 运营标记
	Featured   bool `gorm:"default:false;index"`
	Bestseller bool `gorm:"default:false;index"`

	// 评分聚合，每次新增评论后全量重算
	AverageRating decimal.Decimal `gorm:"type:decimal(3,2);default:0"`
	ReviewCount   int             `gorm:"default:0"`
}

func (Product) TableName() string {
	return "products"
}

// InStock 是否有货
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// IsLowStock 是否低库存
func (p *Product) IsLowStock() bool {
	return p.StockQuantity > 0 && p.StockQuantity < LowStockThreshold
}
