package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
const (
	OrderStatusPending    = "pending"    // 待处理
	OrderStatusProcessing = "processing" // 处理中
	OrderStatusShipped    = "shipped"    // 已发货
	OrderStatusDelivered  = "delivered"  // 已签收
	OrderStatusCancelled  = "cancelled"  // 已取消
)

// OrderStatuses 全部合法状态，后台改状态时校验
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus 状态是否合法
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PaymentMethod 支付方式
const (
	PaymentMethodStripe = "stripe"
	PaymentMethodPayPal = "paypal"
)

// PaymentStatus 支付状态
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// ==================== Order 订单主表 ====================

// ShippingAddress 收货地址 (JSON 列)
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
}

// Order 订单
// 下单时在同一事务内由购物车快照生成，订单行创建后不再修改
type Order struct {
	BaseModel

	UserID int64  `gorm:"index;not null"`
	Status string `gorm:"size:32;index;default:pending"`

	// 金额
	SubtotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// 支付
	PaymentMethod string `gorm:"size:32;not null"`
	PaymentStatus string `gorm:"size:32;default:pending"`

	ShippingAddress datatypes.JSONType[ShippingAddress]

	// 关联
	Items []OrderItem `gorm:"foreignKey:OrderID"`
	User  *User       `gorm:"foreignKey:UserID"`
}

func (Order) TableName() string {
	return "orders"
}

// ==================== OrderItem 订单明细 ====================

// OrderItem 订单行，商品名称与单价为下单时快照
type OrderItem struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	OrderID      int64           `gorm:"index;not null"`
	ProductID    int64           `gorm:"index;not null"`
	ProductName  string          `gorm:"size:255;not null"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity     int             `gorm:"not null"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
}

func (OrderItem) TableName() string {
	return "order_items"
}
