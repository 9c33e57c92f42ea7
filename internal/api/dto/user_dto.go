package dto

import (
	"time"

	"ingaa_store/internal/model"
)

// ==================== 用户信息 ====================

// UserInfo 当前登录用户
type UserInfo struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	IsAdmin         bool      `json:"is_admin"`
	CreatedAt       time.Time `json:"created_at"`
}

// ReviewerInfo 评论人公开信息，不含邮箱
type ReviewerInfo struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

// NewUserInfo 转换
func NewUserInfo(u *model.User) *UserInfo {
	if u == nil {
		return nil
	}
	return &UserInfo{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		IsAdmin:         u.IsAdmin,
		CreatedAt:       u.CreatedAt,
	}
}

// NewReviewerInfo 转换
func NewReviewerInfo(u *model.User) *ReviewerInfo {
	if u == nil {
		return nil
	}
	return &ReviewerInfo{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
	}
}
