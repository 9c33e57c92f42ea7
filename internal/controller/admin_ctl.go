package controller

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/service"
	"ingaa_store/pkg/utils"
)

// ==================== 依赖接口 ====================

// OrderFeed 后台实时订单推送
type OrderFeed interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

// ==================== AdminController 后台 ====================

// AdminController 后台统计、订单、商品、分类与图片上传
type AdminController struct {
	adminService   *service.AdminService
	catalogService *service.CatalogService
	storageService *service.StorageService
	feed           OrderFeed
}

// NewAdminController 创建后台控制器
func NewAdminController(
	adminService *service.AdminService,
	catalogService *service.CatalogService,
	storageService *service.StorageService,
	feed OrderFeed,
) *AdminController {
	return &AdminController{
		adminService:   adminService,
		catalogService: catalogService,
		storageService: storageService,
		feed:           feed,
	}
}

// Stats 仪表盘统计
// @Summary 后台统计
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.StatsResp
// @Failure 403 {object} map[string]interface{}
// @Router /api/admin/stats [get]
func (ctrl *AdminController) Stats(c *gin.Context) {
	stats, err := ctrl.adminService.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, stats)
}

// ==================== 订单 ====================

// ListOrders 全部订单
// @Summary 全部订单
// @Tags Admin
// @Produce json
// @Param limit query int false "条数，默认 100"
// @Param status query string false "状态" Enums(pending, processing, shipped, delivered, cancelled)
// @Success 200 {array} dto.OrderResp
// @Router /api/admin/orders [get]
func (ctrl *AdminController) ListOrders(c *gin.Context) {
	var query dto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, err)
		return
	}

	orders, err := ctrl.adminService.ListOrders(c.Request.Context(), query.Limit, query.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewOrderList(orders))
}

// UpdateOrderStatus 修改订单状态
// @Summary 修改订单状态
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "订单ID"
// @Param body body dto.UpdateOrderStatusReq true "新状态"
// @Success 200 {object} dto.OrderResp
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/orders/{id} [put]
func (ctrl *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	order, err := ctrl.adminService.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewOrderResp(order))
}

// OrderFeed 实时订单推送
// @Summary 实时订单 WebSocket
// @Description 推送 order.created 与 order.status_changed 事件
// @Tags Admin
// @Router /api/admin/orders/ws [get]
func (ctrl *AdminController) OrderFeed(c *gin.Context) {
	if err := ctrl.feed.ServeWS(c.Writer, c.Request); err != nil {
		// 升级失败时 websocket 库已写回错误响应
		zap.L().Warn("WebSocket 升级失败", zap.Error(err))
	}
}

// ==================== 商品 ====================

// CreateProduct 创建商品
// @Summary 创建商品
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body dto.CreateProductReq true "商品"
// @Success 201 {object} dto.ProductResp
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	product, err := ctrl.catalogService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusCreated, dto.NewProductResp(product))
}

// UpdateProduct 更新商品
// @Summary 更新商品（部分字段）
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "商品ID"
// @Param body body dto.UpdateProductReq true "要修改的字段"
// @Success 200 {object} dto.ProductResp
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/products/{id} [put]
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	product, err := ctrl.catalogService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewProductResp(product))
}

// DeleteProduct 删除商品
// @Summary 删除商品
// @Description 同时移出所有购物车与心愿单，历史订单保留快照
// @Tags Admin
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"deleted": true})
}

// ExportProducts 导出商品
// @Summary 导出商品 xlsx
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /api/admin/products/export [get]
func (ctrl *AdminController) ExportProducts(c *gin.Context) {
	var buf bytes.Buffer
	if err := ctrl.adminService.ExportProducts(c.Request.Context(), &buf); err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ==================== 分类 ====================

// CreateCategory 创建分类
// @Summary 创建分类
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body dto.CreateCategoryReq true "分类"
// @Success 201 {object} dto.CategoryResp
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/categories [post]
func (ctrl *AdminController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	category, err := ctrl.catalogService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusCreated, dto.NewCategoryResp(category))
}

// UpdateCategory 更新分类
// @Summary 更新分类
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "分类ID"
// @Param body body dto.UpdateCategoryReq true "要修改的字段"
// @Success 200 {object} dto.CategoryResp
// @Router /api/admin/categories/{id} [put]
func (ctrl *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	category, err := ctrl.catalogService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewCategoryResp(category))
}

// DeleteCategory 删除分类
// @Summary 删除分类（商品保留，分类置空）
// @Tags Admin
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/categories/{id} [delete]
func (ctrl *AdminController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"deleted": true})
}

// ==================== 图片上传 ====================

// UploadImage 上传商品图片
// @Summary 上传商品图片
// @Description multipart 文件 file 与 source_url 二选一
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "图片文件"
// @Param source_url formData string false "图片地址"
// @Success 201 {object} dto.UploadResp
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/uploads [post]
func (ctrl *AdminController) UploadImage(c *gin.Context) {
	var req dto.UploadImageReq
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	ctx := c.Request.Context()
	var (
		url string
		err error
	)

	fileHeader, fileErr := c.FormFile("file")
	switch {
	case fileErr == nil:
		if fileHeader.Size > utils.MaxImageSize {
			fail(c, http.StatusBadRequest, "Image too large")
			return
		}
		f, openErr := fileHeader.Open()
		if openErr != nil {
			fail(c, http.StatusBadRequest, "Invalid file")
			return
		}
		defer f.Close()

		data, readErr := io.ReadAll(f)
		if readErr != nil {
			fail(c, http.StatusBadRequest, "Invalid file")
			return
		}
		url, err = ctrl.storageService.UploadImage(ctx, data)
	case req.SourceURL != "":
		url, err = ctrl.storageService.UploadFromURL(ctx, req.SourceURL)
	default:
		fail(c, http.StatusBadRequest, "file or source_url is required")
		return
	}

	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusCreated, dto.UploadResp{URL: url})
}
