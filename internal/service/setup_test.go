package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
)

// ==================== 测试辅助 ====================

func setupServiceTestDB(t *testing.T) *repository.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "连接测试数据库失败")

	// :memory: 每个连接是独立的库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.AllModels()...), "数据库迁移失败")
	return repository.NewStore(db)
}

func createUser(t *testing.T, store *repository.Store, email string, isAdmin bool) *model.User {
	t.Helper()
	user := &model.User{Email: email, FirstName: "Test", LastName: "Parent", IsAdmin: isAdmin}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

func createCategory(t *testing.T, store *repository.Store, slug string, order int) *model.Category {
	t.Helper()
	category := &model.Category{Slug: slug, Name: slug, DisplayOrder: order}
	require.NoError(t, store.Categories.Create(context.Background(), category))
	return category
}

func createProduct(t *testing.T, store *repository.Store, name, price string, stock int, categoryID *int64) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		CategoryID:    categoryID,
	}
	require.NoError(t, store.Products.Create(context.Background(), product))
	return product
}

func addToCart(t *testing.T, store *repository.Store, userID, productID int64, qty int) {
	t.Helper()
	_, err := store.Cart.AddQuantity(context.Background(), userID, productID, qty)
	require.NoError(t, err)
}

// recordingPublisher 记录推送的事件
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
	data   []any
}

func (p *recordingPublisher) Publish(eventType string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	p.data = append(p.data, data)
}

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}
