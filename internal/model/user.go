package model

import "strings"

// User 商城用户
// 首次登录时按 email upsert，应用内从不删除
type User struct {
	BaseModel

	// 身份信息
	Email           string `gorm:"size:255;uniqueIndex;not null"`
	FirstName       string `gorm:"size:100"`
	LastName        string `gorm:"size:100"`
	ProfileImageURL string `gorm:"size:500"`

	// OIDC sub，开发模式登录时为空
	Subject string `gorm:"size:255;index"`

	// 后台权限只有一个开关，没有角色体系
	IsAdmin bool `gorm:"default:false"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName 展示名
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}
