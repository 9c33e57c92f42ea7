package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ingaa_store/internal/model"
	"ingaa_store/pkg/utils"
)

// ==================== 会话解析 ====================

// SessionResolver 根据会话 ID 加载会话及用户
// 会话不存在或已过期时返回 nil, nil
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*model.Session, error)
}

// Context Keys
const (
	ContextKeyUser      = "current_user"
	ContextKeySessionID = "session_id"
)

type currentUserKey struct{}

// WithCurrentUser 将当前用户写入 request context
func WithCurrentUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, currentUserKey{}, user)
}

// CurrentUserFromContext 从 request context 读取当前用户
func CurrentUserFromContext(ctx context.Context) *model.User {
	if user, ok := ctx.Value(currentUserKey{}).(*model.User); ok {
		return user
	}
	return nil
}

// ==================== Gin 中间件 ====================

// SessionAuth 从 cookie 解析会话（不强制登录）
// 解析失败一律按匿名处理
func SessionAuth(resolver SessionResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sessionID, err := utils.ParseSessionToken(token)
		if err != nil {
			c.Next()
			return
		}

		session, err := resolver.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			zap.L().Warn("加载会话失败", zap.String("session_id", sessionID), zap.Error(err))
			c.Next()
			return
		}
		if session == nil || session.User == nil {
			c.Next()
			return
		}

		c.Set(ContextKeyUser, session.User)
		c.Set(ContextKeySessionID, session.ID)
		c.Request = c.Request.WithContext(WithCurrentUser(c.Request.Context(), session.User))

		c.Next()
	}
}

// RequireAuth 必须登录
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUser(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Unauthorized",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 必须是管理员
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Unauthorized",
			})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Forbidden - Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// GetCurrentUser 从 Context 获取当前用户，未登录返回 nil
func GetCurrentUser(c *gin.Context) *model.User {
	if user, exists := c.Get(ContextKeyUser); exists {
		if u, ok := user.(*model.User); ok {
			return u
		}
	}
	return nil
}

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) int64 {
	if user := GetCurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// GetSessionID 从 Context 获取会话 ID
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
