package model

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AuditMixin 审计字段 (由 middleware.RegisterAuditCallbacks 自动填充)
type AuditMixin struct {
	CreatedBy int64 `gorm:"index;comment:创建人ID" json:"created_by"`
	UpdatedBy int64 `gorm:"comment:更新人ID" json:"updated_by"`
}

// AllModels 需要自动迁移的全部模型
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Session{},
		&Category{},
		&Product{},
		&Review{},
		&CartItem{},
		&WishlistItem{},
		&Order{},
		&OrderItem{},
	}
}
