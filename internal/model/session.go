package model

import "time"

// Session 服务端会话，cookie 中只携带签名后的会话 ID
type Session struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    int64     `gorm:"index;not null"`
	UserAgent string    `gorm:"size:255"`
	IP        string    `gorm:"size:64"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}

func (Session) TableName() string {
	return "sessions"
}

// IsExpired 是否已过期
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
