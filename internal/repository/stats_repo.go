package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ingaa_store/internal/model"
)

// ==================== StatsRepository 后台统计 ====================

// StatsRepository 全表聚合统计
type StatsRepository interface {
	OrderTotals(ctx context.Context) (*OrderTotals, error)
	StockTotals(ctx context.Context) (*StockTotals, error)
	CustomerCount(ctx context.Context) (int64, error)
}

// OrderTotals 订单聚合
type OrderTotals struct {
	Revenue decimal.Decimal
	Total   int64
	Pending int64
}

// StockTotals 库存聚合
type StockTotals struct {
	Total      int64
	LowStock   int64
	OutOfStock int64
}

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 创建统计仓库
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// OrderTotals 营收按全部订单累计，不区分状态
func (r *statsRepository) OrderTotals(ctx context.Context) (*OrderTotals, error) {
	var row OrderTotals
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select(
			"COALESCE(SUM(total_amount), 0) AS revenue, "+
				"COUNT(*) AS total, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending",
			model.OrderStatusPending,
		).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	row.Revenue = row.Revenue.Round(2)
	return &row, nil
}

// StockTotals 低库存: 0 < qty < LowStockThreshold，缺货: qty = 0
func (r *statsRepository) StockTotals(ctx context.Context) (*StockTotals, error) {
	var row StockTotals
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select(
			"COUNT(*) AS total, "+
				"COALESCE(SUM(CASE WHEN stock_quantity > 0 AND stock_quantity < ? THEN 1 ELSE 0 END), 0) AS low_stock, "+
				"COALESCE(SUM(CASE WHEN stock_quantity = 0 THEN 1 ELSE 0 END), 0) AS out_of_stock",
			model.LowStockThreshold,
		).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *statsRepository) CustomerCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
