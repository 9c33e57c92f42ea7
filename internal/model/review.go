package model

import "time"

// 评分范围
const (
	MinRating = 1
	MaxRating = 5
)

// Review 商品评论
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ProductID int64     `gorm:"index;not null"`
	UserID    int64     `gorm:"index;not null"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`

	User *User `gorm:"foreignKey:UserID"`
}

func (Review) TableName() string {
	return "reviews"
}
