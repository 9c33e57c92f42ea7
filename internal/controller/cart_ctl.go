package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/middleware"
	"ingaa_store/internal/service"
)

// ==================== CartController 购物车与心愿单 ====================

// CartController 购物车与心愿单，均需登录
type CartController struct {
	cartService     *service.CartService
	wishlistService *service.WishlistService
}

// NewCartController 创建购物车控制器
func NewCartController(cartService *service.CartService, wishlistService *service.WishlistService) *CartController {
	return &CartController{
		cartService:     cartService,
		wishlistService: wishlistService,
	}
}

// GetCart 购物车
// @Summary 获取购物车及金额预览
// @Tags Cart
// @Produce json
// @Success 200 {object} dto.CartResp
// @Failure 401 {object} map[string]interface{}
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.GetCart(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}

	t := cart.Totals
	success(c, http.StatusOK, dto.NewCartResp(cart.Items, t.Subtotal, t.Shipping, t.Tax, t.Total))
}

// AddItem 加入购物车
// @Summary 加入购物车（已存在时累加数量）
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body dto.AddCartItemReq true "商品与数量"
// @Success 201 {object} dto.CartItemResp
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req dto.AddCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	item, err := ctrl.cartService.AddItem(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusCreated, dto.NewCartItemResp(item))
}

// UpdateItem 修改数量
// @Summary 修改购物车条目数量
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "条目ID"
// @Param body body dto.UpdateCartItemReq true "数量"
// @Success 200 {object} dto.CartItemResp
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/cart/{id} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	item, err := ctrl.cartService.UpdateItem(c.Request.Context(), middleware.GetUserID(c), id, req.Quantity)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewCartItemResp(item))
}

// RemoveItem 删除条目
// @Summary 删除购物车条目
// @Tags Cart
// @Produce json
// @Param id path int true "条目ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/cart/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.cartService.RemoveItem(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"deleted": true})
}

// ==================== 心愿单 ====================

// ListWishlist 心愿单
// @Summary 心愿单列表
// @Tags Wishlist
// @Produce json
// @Success 200 {array} dto.WishlistItemResp
// @Router /api/wishlist [get]
func (ctrl *CartController) ListWishlist(c *gin.Context) {
	items, err := ctrl.wishlistService.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewWishlistList(items))
}

// ToggleWishlist 切换心愿单
// @Summary 加入或移出心愿单
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param body body dto.ToggleWishlistReq true "商品"
// @Success 200 {object} dto.ToggleWishlistResp
// @Failure 404 {object} map[string]interface{}
// @Router /api/wishlist/toggle [post]
func (ctrl *CartController) ToggleWishlist(c *gin.Context) {
	var req dto.ToggleWishlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	added, err := ctrl.wishlistService.Toggle(c.Request.Context(), middleware.GetUserID(c), req.ProductID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.ToggleWishlistResp{Added: added, Removed: !added})
}
