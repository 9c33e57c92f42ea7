package dto

import (
	"time"

	"ingaa_store/internal/model"
)

// ==================== 下单 ====================

// ShippingAddressReq 收货地址，全部必填
type ShippingAddressReq struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Address  string `json:"address" binding:"required,max=500"`
	City     string `json:"city" binding:"required,max=100"`
	State    string `json:"state" binding:"required,max=100"`
	ZipCode  string `json:"zip_code" binding:"required,max=20"`
	Country  string `json:"country" binding:"required,max=100"`
}

// CreateOrderReq 下单请求，金额由服务端按购物车计算
type CreateOrderReq struct {
	PaymentMethod   string             `json:"payment_method" binding:"required,payment_method"`
	ShippingAddress ShippingAddressReq `json:"shipping_address"`
}

// ToModel 转换为收货地址
func (r *ShippingAddressReq) ToModel() model.ShippingAddress {
	return model.ShippingAddress{
		FullName: r.FullName,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		ZipCode:  r.ZipCode,
		Country:  r.Country,
	}
}

// ==================== 订单列表查询 ====================

// OrderListQuery 后台订单列表
type OrderListQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=500"`
	Status string `form:"status" binding:"omitempty,order_status"`
}

// UpdateOrderStatusReq 后台修改订单状态
type UpdateOrderStatusReq struct {
	Status string `json:"status" binding:"required,order_status"`
}

// ==================== 响应 ====================

// OrderItemResp 订单明细
type OrderItemResp struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

// OrderResp 订单
type OrderResp struct {
	ID              int64                 `json:"id"`
	UserID          int64                 `json:"user_id"`
	Status          string                `json:"status"`
	PaymentMethod   string                `json:"payment_method"`
	PaymentStatus   string                `json:"payment_status"`
	SubtotalAmount  string                `json:"subtotal_amount"`
	ShippingAmount  string                `json:"shipping_amount"`
	TaxAmount       string                `json:"tax_amount"`
	TotalAmount     string                `json:"total_amount"`
	ShippingAddress model.ShippingAddress `json:"shipping_address"`
	Items           []*OrderItemResp      `json:"items"`
	User            *UserInfo             `json:"user,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// PlaceOrderResp 下单结果
type PlaceOrderResp struct {
	OrderID int64      `json:"order_id"`
	Order   *OrderResp `json:"order"`
}

// NewOrderResp 转换
func NewOrderResp(o *model.Order) *OrderResp {
	if o == nil {
		return nil
	}
	resp := &OrderResp{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		SubtotalAmount:  o.SubtotalAmount.StringFixed(2),
		ShippingAmount:  o.ShippingAmount.StringFixed(2),
		TaxAmount:       o.TaxAmount.StringFixed(2),
		TotalAmount:     o.TotalAmount.StringFixed(2),
		ShippingAddress: o.ShippingAddress.Data(),
		Items:           make([]*OrderItemResp, 0, len(o.Items)),
		User:            NewUserInfo(o.User),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, &OrderItemResp{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice.StringFixed(2),
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal.StringFixed(2),
		})
	}
	return resp
}

// NewOrderList 转换列表
func NewOrderList(orders []model.Order) []*OrderResp {
	list := make([]*OrderResp, 0, len(orders))
	for i := range orders {
		list = append(list, NewOrderResp(&orders[i]))
	}
	return list
}
