package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ingaa_store/internal/model"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	// :memory: 每个连接是独立的库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取连接池失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Category{},
		&model.Product{},
		&model.Review{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, store *Store, email string) *model.User {
	user := &model.User{Email: email, FirstName: "Test"}
	if err := store.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user
}

func createTestProduct(t *testing.T, store *Store, name, price string, stock int) *model.Product {
	product := &model.Product{
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
	if err := store.Products.Create(context.Background(), product); err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	return product
}

func TestStore_TransactionRollback(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	err := store.Transaction(ctx, func(tx *Store) error {
		if err := tx.Users.Create(ctx, &model.User{Email: "rollback@test.com"}); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	if err == nil {
		t.Fatal("Transaction() 应返回错误")
	}

	user, err := store.Users.GetByEmail(ctx, "rollback@test.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if user != nil {
		t.Error("事务回滚后用户不应存在")
	}
}
