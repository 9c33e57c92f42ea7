package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/middleware"
	"ingaa_store/internal/service"
)

// ==================== CatalogController 商品目录 ====================

// CatalogController 分类、商品与评论（前台）
type CatalogController struct {
	catalogService *service.CatalogService
	reviewService  *service.ReviewService
}

// NewCatalogController 创建目录控制器
func NewCatalogController(catalogService *service.CatalogService, reviewService *service.ReviewService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// ListCategories 分类列表
// @Summary 分类列表
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.CategoryResp
// @Router /api/categories [get]
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewCategoryList(categories))
}

// ListProducts 商品列表
// @Summary 商品列表
// @Description 按分类、推荐、热销、价格区间过滤，支持排序
// @Tags Catalog
// @Produce json
// @Param category query string false "分类 slug"
// @Param featured query bool false "只看推荐"
// @Param bestseller query bool false "只看热销"
// @Param price query string false "价格区间" Enums(all, under25, 25to50, 50to100, over100)
// @Param sort query string false "排序" Enums(featured, newest, price-low, price-high, rating)
// @Param limit query int false "条数"
// @Success 200 {array} dto.ProductResp
// @Failure 400 {object} map[string]interface{}
// @Router /api/products [get]
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	var query dto.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindFailed(c, err)
		return
	}

	products, err := ctrl.catalogService.ListProducts(c.Request.Context(), &query)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewProductList(products))
}

// GetProduct 商品详情
// @Summary 商品详情
// @Tags Catalog
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {object} dto.ProductResp
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := ctrl.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewProductResp(product))
}

// ==================== 评论 ====================

// ListReviews 商品评论
// @Summary 商品评论列表
// @Tags Catalog
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {array} dto.ReviewResp
// @Router /api/products/{id}/reviews [get]
func (ctrl *CatalogController) ListReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.ListReviews(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusOK, dto.NewReviewList(reviews))
}

// CreateReview 发表评论
// @Summary 发表评论
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "商品ID"
// @Param body body dto.CreateReviewReq true "评分与内容"
// @Success 201 {object} dto.ReviewResp
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id}/reviews [post]
func (ctrl *CatalogController) CreateReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	review, err := ctrl.reviewService.CreateReview(c.Request.Context(), middleware.GetCurrentUser(c), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, http.StatusCreated, dto.NewReviewResp(review))
}
