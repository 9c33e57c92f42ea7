package service

import (
	"context"
	"fmt"

	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
)

// ==================== UserService 用户服务 ====================

// UserService 后台权限维护
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// SetAdmin 按邮箱授予或撤销后台权限
// 用户必须至少登录过一次
func (s *UserService) SetAdmin(ctx context.Context, email string, isAdmin bool) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.SetAdmin(ctx, user.ID, isAdmin); err != nil {
		return nil, fmt.Errorf("更新权限失败: %w", err)
	}
	user.IsAdmin = isAdmin
	return user, nil
}
