package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"ingaa_store/internal/model"
)

// ==================== 购物车 ====================

// AddCartItemReq 加入购物车，quantity 缺省为 1
type AddCartItemReq struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"omitempty,min=1,max=99"`
}

// UpdateCartItemReq 修改数量
type UpdateCartItemReq struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=99"`
}

// CartItemResp 购物车条目
type CartItemResp struct {
	ID        int64        `json:"id"`
	ProductID int64        `json:"product_id"`
	Quantity  int          `json:"quantity"`
	LineTotal string       `json:"line_total"`
	Product   *ProductResp `json:"product"`
}

// CartResp 购物车及金额预览
type CartResp struct {
	Items     []*CartItemResp `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  string          `json:"subtotal"`
	Shipping  string          `json:"shipping"`
	Tax       string          `json:"tax"`
	Total     string          `json:"total"`
}

// NewCartItemResp 转换
func NewCartItemResp(item *model.CartItem) *CartItemResp {
	resp := &CartItemResp{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		LineTotal: "0.00",
		Product:   NewProductResp(item.Product),
	}
	if item.Product != nil {
		resp.LineTotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2)
	}
	return resp
}

// NewCartResp 转换
func NewCartResp(items []model.CartItem, subtotal, shipping, tax, total decimal.Decimal) *CartResp {
	resp := &CartResp{
		Items:    make([]*CartItemResp, 0, len(items)),
		Subtotal: subtotal.StringFixed(2),
		Shipping: shipping.StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    total.StringFixed(2),
	}
	for i := range items {
		resp.Items = append(resp.Items, NewCartItemResp(&items[i]))
		resp.ItemCount += items[i].Quantity
	}
	return resp
}

// ==================== 心愿单 ====================

// ToggleWishlistReq 切换心愿单
type ToggleWishlistReq struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
}

// ToggleWishlistResp 切换结果: {"added": true} 或 {"removed": true}
type ToggleWishlistResp struct {
	Added   bool `json:"added,omitempty"`
	Removed bool `json:"removed,omitempty"`
}

// WishlistItemResp 心愿单条目
type WishlistItemResp struct {
	ID        int64        `json:"id"`
	ProductID int64        `json:"product_id"`
	CreatedAt time.Time    `json:"created_at"`
	Product   *ProductResp `json:"product"`
}

// NewWishlistList 转换列表
func NewWishlistList(items []model.WishlistItem) []*WishlistItemResp {
	list := make([]*WishlistItemResp, 0, len(items))
	for i := range items {
		list = append(list, &WishlistItemResp{
			ID:        items[i].ID,
			ProductID: items[i].ProductID,
			CreatedAt: items[i].CreatedAt,
			Product:   NewProductResp(items[i].Product),
		})
	}
	return list
}
