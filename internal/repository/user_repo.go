package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ingaa_store/internal/model"
)

// ==================== UserRepository 用户仓库 ====================

// UserRepository 用户仓库接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Upsert(ctx context.Context, user *model.User, updateColumns []string) (*model.User, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
	Count(ctx context.Context) (int64, error)
}

// ==================== 实现 ====================

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID 根据 ID 获取用户
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

// Upsert 按 email 插入或更新，updateColumns 为冲突时覆盖的列
// 返回库中最新的用户记录
func (r *userRepository) Upsert(ctx context.Context, user *model.User, updateColumns []string) (*model.User, error) {
	assignments := map[string]interface{}{"updated_at": time.Now()}
	for _, col := range updateColumns {
		assignments[col] = gorm.Expr("excluded." + col)
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}
	return r.GetByEmail(ctx, user.Email)
}

// SetAdmin 设置后台权限
func (r *userRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_admin", isAdmin).Error
}

// Count 用户总数
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}
