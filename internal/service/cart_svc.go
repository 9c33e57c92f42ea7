package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
)

// ==================== CartService 购物车 ====================

// CartService 购物车，每个用户一个
type CartService struct {
	store *repository.Store
}

// NewCartService 创建购物车服务
func NewCartService(store *repository.Store) *CartService {
	return &CartService{store: store}
}

// Cart 购物车内容及金额预览
type Cart struct {
	Items  []model.CartItem
	Totals Totals
}

// GetCart 返回用户购物车与金额
// 已下架商品的条目不计入小计
func (s *CartService) GetCart(ctx context.Context, userID int64) (*Cart, error) {
	items, err := s.store.Cart.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("查询购物车失败: %w", err)
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal = subtotal.Add(LineSubtotal(item.Product.Price, item.Quantity))
	}

	return &Cart{Items: items, Totals: CalculateTotals(subtotal)}, nil
}

// AddItem 加入购物车，已存在时累加数量
func (s *CartService) AddItem(ctx context.Context, userID int64, req *dto.AddCartItemReq) (*model.CartItem, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.store.Products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	item, err := s.store.Cart.AddQuantity(ctx, userID, req.ProductID, quantity)
	if err != nil {
		return nil, fmt.Errorf("加入购物车失败: %w", err)
	}
	item.Product = product
	return item, nil
}

// UpdateItem 修改条目数量，只能修改自己的条目
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID int64, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.store.Cart.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, fmt.Errorf("更新购物车失败: %w", err)
	}
	item.Quantity = quantity

	product, err := s.store.Products.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// RemoveItem 删除条目
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int64) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.store.Cart.Delete(ctx, itemID)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.store.Cart.DeleteByUser(ctx, userID)
}

func (s *CartService) ownedItem(ctx context.Context, userID, itemID int64) (*model.CartItem, error) {
	item, err := s.store.Cart.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}
	return item, nil
}

// ==================== WishlistService 心愿单 ====================

// WishlistService 心愿单
type WishlistService struct {
	store *repository.Store
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(store *repository.Store) *WishlistService {
	return &WishlistService{store: store}
}

// List 心愿单列表
func (s *WishlistService) List(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	return s.store.Wishlist.ListByUser(ctx, userID)
}

// Toggle 存在则移除，不存在则加入，返回是否加入
func (s *WishlistService) Toggle(ctx context.Context, userID, productID int64) (added bool, err error) {
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		existing, err := tx.Wishlist.Find(ctx, userID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			added = false
			return tx.Wishlist.Delete(ctx, existing.ID)
		}

		product, err := tx.Products.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}

		added = true
		return tx.Wishlist.Create(ctx, &model.WishlistItem{UserID: userID, ProductID: productID})
	})
	return added, err
}
