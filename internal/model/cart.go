package model

import "time"

// MaxCartItemQuantity 单个购物车条目的数量上限，重复加购累加到此为止
const MaxCartItemQuantity = 99

// CartItem 购物车条目
// (user_id, product_id) 唯一，重复加购时累加数量
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_cart_user_product;index"`
	Quantity  int   `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// WishlistItem 心愿单条目，只记录存在与否
type WishlistItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID int64 `gorm:"not null;uniqueIndex:idx_wishlist_user_product;index"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
