package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
)

// 后台订单列表默认条数
const defaultAdminOrderLimit = 100

// ==================== AdminService 后台 ====================

// AdminService 后台统计、订单管理与导出
type AdminService struct {
	store     *repository.Store
	publisher EventPublisher
}

// NewAdminService 创建后台服务
func NewAdminService(store *repository.Store, publisher EventPublisher) *AdminService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &AdminService{store: store, publisher: publisher}
}

// Stats 仪表盘统计，三组聚合并发执行
func (s *AdminService) Stats(ctx context.Context) (*dto.StatsResp, error) {
	var (
		orders    *repository.OrderTotals
		stock     *repository.StockTotals
		customers int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.store.Stats.OrderTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stock, err = s.store.Stats.StockTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.store.Stats.CustomerCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("统计查询失败: %w", err)
	}

	return &dto.StatsResp{
		TotalRevenue:       orders.Revenue.StringFixed(2),
		TotalOrders:        orders.Total,
		PendingOrders:      orders.Pending,
		TotalProducts:      stock.Total,
		LowStockProducts:   stock.LowStock,
		OutOfStockProducts: stock.OutOfStock,
		TotalCustomers:     customers,
	}, nil
}

// ListOrders 全部订单，最新在前，附带明细与买家
func (s *AdminService) ListOrders(ctx context.Context, limit int, status string) ([]model.Order, error) {
	if status != "" && !model.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	if limit <= 0 {
		limit = defaultAdminOrderLimit
	}

	orders, err := s.store.Orders.List(ctx, repository.OrderFilter{Status: status, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("查询订单失败: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus 修改订单状态，五种状态之间可任意流转
func (s *AdminService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	if !model.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	rows, err := s.store.Orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("更新订单状态失败: %w", err)
	}
	if rows == 0 {
		return nil, ErrOrderNotFound
	}

	order, err := s.store.Orders.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	zap.L().Info("订单状态已更新", zap.Int64("order_id", id), zap.String("status", status))
	s.publisher.Publish(EventOrderStatusChanged, dto.NewOrderResp(order))
	return order, nil
}

// ==================== 商品导出 ====================

var exportHeaders = []string{
	"ID", "Name", "Category", "Price", "Stock", "Age Range",
	"Featured", "Bestseller", "Average Rating", "Reviews", "Certifications", "Updated At",
}

// ExportProducts 导出全部商品为 xlsx
func (s *AdminService) ExportProducts(ctx context.Context, w io.Writer) error {
	products, err := s.store.Products.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("查询商品失败: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("创建工作表失败: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetString(p.Name)
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		row.AddCell().SetString(categoryName)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetInt(p.StockQuantity)
		row.AddCell().SetString(p.AgeRange)
		row.AddCell().SetBool(p.Featured)
		row.AddCell().SetBool(p.Bestseller)
		row.AddCell().SetString(p.AverageRating.StringFixed(2))
		row.AddCell().SetInt(p.ReviewCount)
		row.AddCell().SetString(strings.Join(p.SafetyCertifications, ", "))
		row.AddCell().SetString(p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}
