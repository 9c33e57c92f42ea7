package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/config"
	"ingaa_store/internal/controller"
	"ingaa_store/internal/middleware"
	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
	"ingaa_store/internal/router"
	"ingaa_store/internal/service"
	"ingaa_store/internal/task"
	"ingaa_store/pkg/database"
	"ingaa_store/pkg/logger"
	"ingaa_store/pkg/utils"
	"ingaa_store/pkg/ws"
)

// @title           Ingaa Baby Store API
// @version         1.0
// @description     母婴商城后端接口: 商品目录、评论、购物车、心愿单、下单与后台管理
// @BasePath        /
// @securityDefinitions.apikey CookieAuth
// @in              cookie
// @name            ingaa_sid

func main() {
	app := &cli.App{
		Name:  "ingaa-store",
		Usage: "Ingaa 母婴商城后端",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "可选的 YAML 配置文件",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Action: runServe,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "启动 HTTP 服务 (默认)",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "自动建表后退出",
				Action: runMigrate,
			},
			{
				Name:   "seed",
				Usage:  "写入示例分类与商品 (可重复执行)",
				Action: runSeed,
			},
			{
				Name:  "admin",
				Usage: "管理员权限",
				Subcommands: []*cli.Command{
					{
						Name:  "grant",
						Usage: "按邮箱授予管理员",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "email", Required: true},
							&cli.BoolFlag{Name: "revoke", Usage: "撤销而不是授予"},
						},
						Action: runAdminGrant,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	DB       *gorm.DB
	Store    *repository.Store
	Hub      *ws.Hub
	Limiter  *middleware.IPRateLimiter
	Services *Services
}

// Services 服务层集合
type Services struct {
	Auth     *service.AuthService
	User     *service.UserService
	Catalog  *service.CatalogService
	Review   *service.ReviewService
	Cart     *service.CartService
	Wishlist *service.WishlistService
	Order    *service.OrderService
	Admin    *service.AdminService
	Storage  *service.StorageService
	Seed     *service.SeedService
}

// bootstrap 加载配置、初始化日志与数据库
// 返回的 cleanup 负责 flush 日志和关闭连接池
func bootstrap(c *cli.Context) (*Dependencies, func(), error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	flush, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	db, err := initDatabase(cfg)
	if err != nil {
		flush()
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		flush()
	}

	return &Dependencies{
		Config: cfg,
		Logger: zap.L(),
		DB:     db,
		Store:  repository.NewStore(db),
	}, cleanup, nil
}

// ==================== 数据库初始化 ====================

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL 不能为空")
	}

	db, err := database.InitDB(database.Config{
		DSN:   cfg.Database.URL,
		Debug: cfg.Database.Debug,
	})
	if err != nil {
		return nil, err
	}

	if err := middleware.RegisterAuditCallbacks(db); err != nil {
		return nil, fmt.Errorf("注册审计回调失败: %w", err)
	}
	return db, nil
}

// ==================== 服务初始化 ====================

// initDependencies 组装服务层
func initDependencies(deps *Dependencies) error {
	cfg := deps.Config

	utils.SetSessionTokenConfig(&utils.SessionTokenConfig{
		SecretKey: cfg.Session.Secret,
		TTL:       cfg.Session.TTL,
		Issuer:    "ingaa-store",
	})
	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("注册校验器失败: %w", err)
	}

	httpClient := utils.NewHTTPClient(utils.HTTPClientOptions{
		Debug: cfg.LogLevel == "debug",
	})

	deps.Hub = ws.NewHub(cfg.CORS.Origins)
	deps.Limiter = middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	var provider service.IdentityProvider
	if cfg.OIDCEnabled() {
		provider = service.NewOIDCProvider(service.OIDCConfig{
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			IssuerURL:    cfg.OIDC.IssuerURL,
			RedirectURL:  cfg.OIDC.RedirectURL,
		}, httpClient)
	} else {
		deps.Logger.Warn("未配置 CLIENT_ID / CLIENT_SECRET，使用开发登录")
	}

	storageSvc, err := initStorageService(cfg, httpClient)
	if err != nil {
		return err
	}

	store := deps.Store
	deps.Services = &Services{
		Auth:     service.NewAuthService(store, provider, cfg.Session.TTL),
		User:     service.NewUserService(store.Users),
		Catalog:  service.NewCatalogService(store, storageSvc),
		Review:   service.NewReviewService(store),
		Cart:     service.NewCartService(store),
		Wishlist: service.NewWishlistService(store),
		Order:    service.NewOrderService(store, deps.Hub),
		Admin:    service.NewAdminService(store, deps.Hub),
		Storage:  storageSvc,
		Seed:     service.NewSeedService(store),
	}
	return nil
}

// initStorageService 初始化图片存储
func initStorageService(cfg *config.Config, client *resty.Client) (*service.StorageService, error) {
	provider, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  cfg.Storage.Provider,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		CDNDomain: cfg.Storage.CDNDomain,
		BasePath:  cfg.Storage.BasePath,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化存储失败: %w", err)
	}
	return service.NewStorageService(provider, client), nil
}

// initControllers 初始化所有控制器
func initControllers(deps *Dependencies) router.Controllers {
	svc := deps.Services
	return router.Controllers{
		Auth: controller.NewAuthController(svc.Auth, controller.CookieConfig{
			Name:   deps.Config.Session.CookieName,
			Secure: deps.Config.IsProduction(),
		}),
		Catalog: controller.NewCatalogController(svc.Catalog, svc.Review),
		Cart:    controller.NewCartController(svc.Cart, svc.Wishlist),
		Order:   controller.NewOrderController(svc.Order),
		Admin:   controller.NewAdminController(svc.Admin, svc.Catalog, svc.Storage, deps.Hub),
	}
}

// ==================== 命令 ====================

func runServe(c *cli.Context) error {
	deps, cleanup, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(deps.DB, model.AllModels()...); err != nil {
		return err
	}
	if err := initDependencies(deps); err != nil {
		return err
	}
	defer deps.Hub.Close()

	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := router.Options{
		Logger:          deps.Logger,
		CORSOrigins:     deps.Config.CORS.Origins,
		SessionResolver: deps.Services.Auth,
		CookieName:      deps.Config.Session.CookieName,
		RateLimiter:     deps.Limiter,
	}
	if deps.Config.Storage.Provider == "local" {
		opts.UploadDir = deps.Config.Storage.BasePath
		opts.UploadURL = deps.Config.Storage.PublicURL
	}
	r := router.New(opts, initControllers(deps))

	cleanupTask := task.NewCleanupTask(deps.Services.Auth, deps.Limiter, task.DefaultCleanupSpec)
	if err := cleanupTask.Start(); err != nil {
		return err
	}
	defer cleanupTask.Stop()

	return startServer(deps, r)
}

func runMigrate(c *cli.Context) error {
	deps, cleanup, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer cleanup()

	return database.Migrate(deps.DB, model.AllModels()...)
}

func runSeed(c *cli.Context) error {
	deps, cleanup, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(deps.DB, model.AllModels()...); err != nil {
		return err
	}

	result, err := service.NewSeedService(deps.Store).Seed(c.Context)
	if err != nil {
		return err
	}
	deps.Logger.Info("示例数据写入完成",
		zap.Int("categories", result.Categories),
		zap.Int("products", result.Products),
	)
	return nil
}

func runAdminGrant(c *cli.Context) error {
	deps, cleanup, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer cleanup()

	grant := !c.Bool("revoke")
	user, err := service.NewUserService(deps.Store.Users).SetAdmin(c.Context, c.String("email"), grant)
	if err != nil {
		return err
	}
	deps.Logger.Info("管理员权限已更新",
		zap.String("email", user.Email),
		zap.Bool("is_admin", user.IsAdmin),
	)
	return nil
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到退出信号后优雅关闭
func startServer(deps *Dependencies, r *gin.Engine) error {
	port := deps.Config.Port

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		deps.Logger.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	case <-quit:
	}

	deps.Logger.Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}

	deps.Logger.Info("服务已退出")
	return nil
}
