package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/middleware"
	"ingaa_store/internal/service"
)

// ==================== OrderController 订单 ====================

// OrderController 下单与我的订单
type OrderController struct {
	orderService *service.OrderService
}

// NewOrderController 创建订单控制器
func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// PlaceOrder 下单
// @Summary 由购物车下单
// @Description 金额按当前商品价格计算：满 50 包邮，否则运费 5.99；税率 8%
// @Tags Order
// @Accept json
// @Produce json
// @Param body body dto.CreateOrderReq true "支付方式与收货地址"
// @Success 201 {object} dto.PlaceOrderResp
// @Failure 400 {object} map[string]interface{} "参数错误或购物车为空"
// @Failure 401 {object} map[string]interface{}
// @Router /api/orders [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	order, err := ctrl.orderService.PlaceOrder(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusCreated, dto.PlaceOrderResp{
		OrderID: order.ID,
		Order:   dto.NewOrderResp(order),
	})
}

// ListOrders 我的订单
// @Summary 我的订单
// @Tags Order
// @Produce json
// @Success 200 {array} dto.OrderResp
// @Router /api/orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	orders, err := ctrl.orderService.ListUserOrders(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewOrderList(orders))
}

// GetOrder 订单详情
// @Summary 订单详情（本人或管理员）
// @Tags Order
// @Produce json
// @Param id path int true "订单ID"
// @Success 200 {object} dto.OrderResp
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewOrderResp(order))
}
