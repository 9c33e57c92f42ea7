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

// 订单事件类型
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// ==================== 依赖接口 ====================

// EventPublisher 订单事件推送（后台实时订单流）
type EventPublisher interface {
	Publish(eventType string, data any)
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, any) {}

// ==================== OrderService ====================

// OrderService 下单与订单查询
type OrderService struct {
	store     *repository.Store
	publisher EventPublisher
}

// NewOrderService 创建订单服务，publisher 可为 nil
func NewOrderService(store *repository.Store, publisher EventPublisher) *OrderService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &OrderService{store: store, publisher: publisher}
}

// ==================== 下单 ====================

// PlaceOrder 由购物车生成订单
// 购物车行加锁读取，订单头、订单行写入和清空购物车在同一事务内完成
// 任一条目数量超过库存时整单拒绝，库存由后台维护，下单不扣减
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, req *dto.CreateOrderReq) (*model.Order, error) {
	if req.PaymentMethod != model.PaymentMethodStripe && req.PaymentMethod != model.PaymentMethodPayPal {
		return nil, ValidationError("Invalid payment method")
	}

	var order *model.Order
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		cartItems, err := tx.Cart.ListByUserForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("读取购物车失败: %w", err)
		}

		items := make([]model.OrderItem, 0, len(cartItems))
		subtotal := decimal.Zero
		for _, ci := range cartItems {
			// 已下架商品跳过
			if ci.Product == nil {
				continue
			}
			if ci.Quantity > ci.Product.StockQuantity {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, ci.Product.Name)
			}
			line := LineSubtotal(ci.Product.Price, ci.Quantity)
			subtotal = subtotal.Add(line)
			items = append(items, model.OrderItem{
				ProductID:    ci.ProductID,
				ProductName:  ci.Product.Name,
				ProductPrice: ci.Product.Price,
				Quantity:     ci.Quantity,
				Subtotal:     line.Round(2),
			})
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		totals := CalculateTotals(subtotal)
		order = &model.Order{
			UserID:          userID,
			Status:          model.OrderStatusPending,
			SubtotalAmount:  totals.Subtotal,
			ShippingAmount:  totals.Shipping,
			TaxAmount:       totals.Tax,
			TotalAmount:     totals.Total,
			PaymentMethod:   req.PaymentMethod,
			PaymentStatus:   model.PaymentStatusPending,
			ShippingAddress: datatypes.NewJSONType(req.ShippingAddress.ToModel()),
			Items:           items,
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("创建订单失败: %w", err)
		}

		if err := tx.Cart.DeleteByUser(ctx, userID); err != nil {
			return fmt.Errorf("清空购物车失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("订单已创建",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)
	s.publisher.Publish(EventOrderCreated, dto.NewOrderResp(order))
	return order, nil
}

// ==================== 订单查询 ====================

// ListUserOrders 用户自己的订单，最新在前
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	orders, err := s.store.Orders.List(ctx, repository.OrderFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("查询订单失败: %w", err)
	}
	return orders, nil
}

// GetOrder 订单详情，仅本人或管理员可见
func (s *OrderService) GetOrder(ctx context.Context, viewer *model.User, id int64) (*model.Order, error) {
	order, err := s.store.Orders.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询订单失败: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != viewer.ID && !viewer.IsAdmin {
		return nil, ErrForbidden
	}
	return order, nil
}
