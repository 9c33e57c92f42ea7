package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"ingaa_store/internal/controller"
	"ingaa_store/internal/middleware"

	_ "ingaa_store/docs"
)

// Options 路由与全局中间件配置
type Options struct {
	Logger          *zap.Logger
	CORSOrigins     []string
	SessionResolver middleware.SessionResolver
	CookieName      string
	RateLimiter     *middleware.IPRateLimiter // 登录、评论、下单限流
	UploadDir       string                    // 本地存储目录，为空时不挂载静态文件
	UploadURL       string
}

// Controllers 全部控制器
type Controllers struct {
	Auth    *controller.AuthController
	Catalog *controller.CatalogController
	Cart    *controller.CartController
	Order   *controller.OrderController
	Admin   *controller.AdminController
}

// New 创建 gin 引擎并注册中间件与路由
func New(opts Options, ctls Controllers) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 16 << 20

	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestLogger(opts.Logger))
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.SessionAuth(opts.SessionResolver, opts.CookieName))

	if opts.UploadDir != "" {
		r.Static(opts.UploadURL, opts.UploadDir)
	}

	InitRoutes(r, opts.RateLimiter, ctls)
	return r
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, limiter *middleware.IPRateLimiter, ctls Controllers) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:5000/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limit := func() gin.HandlerFunc {
		if limiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(limiter)
	}

	// 2. API 路由组
	api := r.Group("/api")
	{
		// 登录流程
		api.GET("/login", limit(), ctls.Auth.Login)
		api.GET("/logout", ctls.Auth.Logout)
		api.GET("/auth/callback", limit(), ctls.Auth.Callback)
		api.GET("/auth/user", ctls.Auth.CurrentUser)

		// 商品目录（公开）
		api.GET("/categories", ctls.Catalog.ListCategories)
		products := api.Group("/products")
		{
			products.GET("", ctls.Catalog.ListProducts)
			products.GET("/:id", ctls.Catalog.GetProduct)
			products.GET("/:id/reviews", ctls.Catalog.ListReviews)
			products.POST("/:id/reviews", middleware.RequireAuth(), limit(), ctls.Catalog.CreateReview)
		}

		// 购物车
		cart := api.Group("/cart", middleware.RequireAuth())
		{
			cart.GET("", ctls.Cart.GetCart)
			cart.POST("", ctls.Cart.AddItem)
			cart.PUT("/:id", ctls.Cart.UpdateItem)
			cart.DELETE("/:id", ctls.Cart.RemoveItem)
		}

		// 心愿单
		wishlist := api.Group("/wishlist", middleware.RequireAuth())
		{
			wishlist.GET("", ctls.Cart.ListWishlist)
			wishlist.POST("/toggle", ctls.Cart.ToggleWishlist)
		}

		// 订单
		orders := api.Group("/orders", middleware.RequireAuth())
		{
			orders.GET("", ctls.Order.ListOrders)
			orders.POST("", limit(), ctls.Order.PlaceOrder)
			orders.GET("/:id", ctls.Order.GetOrder)
		}

		// 后台
		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/stats", ctls.Admin.Stats)

			admin.GET("/orders", ctls.Admin.ListOrders)
			admin.GET("/orders/ws", ctls.Admin.OrderFeed)
			admin.PUT("/orders/:id", ctls.Admin.UpdateOrderStatus)

			admin.POST("/products", ctls.Admin.CreateProduct)
			admin.GET("/products/export", ctls.Admin.ExportProducts)
			admin.PUT("/products/:id", ctls.Admin.UpdateProduct)
			admin.DELETE("/products/:id", ctls.Admin.DeleteProduct)

			admin.POST("/categories", ctls.Admin.CreateCategory)
			admin.PUT("/categories/:id", ctls.Admin.UpdateCategory)
			admin.DELETE("/categories/:id", ctls.Admin.DeleteCategory)

			admin.POST("/uploads", ctls.Admin.UploadImage)
		}
	}
}
