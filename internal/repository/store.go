package repository

import (
	"context"

	"gorm.io/gorm"
)

// ==================== 事务支持 ====================

// Store 仓库集合（工作单元）
// Transaction 内的所有仓库共享同一个事务连接
type Store struct {
	db         *gorm.DB
	Users      UserRepository
	Sessions   SessionRepository
	Categories CategoryRepository
	Products   ProductRepository
	Reviews    ReviewRepository
	Cart       CartRepository
	Wishlist   WishlistRepository
	Orders     OrderRepository
	Stats      StatsRepository
}

// NewStore 创建仓库集合
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Users:      NewUserRepository(db),
		Sessions:   NewSessionRepository(db),
		Categories: NewCategoryRepository(db),
		Products:   NewProductRepository(db),
		Reviews:    NewReviewRepository(db),
		Cart:       NewCartRepository(db),
		Wishlist:   NewWishlistRepository(db),
		Orders:     NewOrderRepository(db),
		Stats:      NewStatsRepository(db),
	}
}

// Transaction 执行事务，fn 返回错误时回滚
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB 底层连接
func (s *Store) DB() *gorm.DB {
	return s.db
}
