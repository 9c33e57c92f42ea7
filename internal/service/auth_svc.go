package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ingaa_store/internal/model"
	"ingaa_store/internal/repository"
	"ingaa_store/pkg/utils"
)

// 开发模式登录账号（未配置 OIDC 时使用）
const (
	DevUserEmail     = "test@ingaa.com"
	DevUserFirstName = "Test"
	DevUserLastName  = "User"
)

// 登录后跳转地址
const (
	RedirectHome       = "/"
	RedirectAuthFailed = "/?error=auth_failed"
)

// 登录 upsert 时覆盖的列
var (
	oidcUpsertColumns = []string{"first_name", "last_name", "profile_image_url", "subject"}
	devUpsertColumns  = []string{"first_name", "last_name", "is_admin"}
)

// ==================== AuthService 登录与会话 ====================

// AuthService OIDC 登录、会话签发与解析
type AuthService struct {
	store      *repository.Store
	provider   IdentityProvider // nil 表示开发模式
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthService 创建认证服务，provider 为 nil 时启用开发模式登录
func NewAuthService(store *repository.Store, provider IdentityProvider, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = utils.GetSessionTokenConfig().TTL
	}
	return &AuthService{
		store:      store,
		provider:   provider,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// ClientInfo 发起登录的客户端信息，记录到会话
type ClientInfo struct {
	UserAgent string
	IP        string
}

// IssuedSession 新签发的会话
type IssuedSession struct {
	Token     string // cookie 值
	ExpiresAt time.Time
	User      *model.User
}

// LoginStart 登录第一步的结果
// 开发模式直接签发会话，否则只返回授权地址
type LoginStart struct {
	RedirectURL string
	Session     *IssuedSession
}

// DevMode 是否开发模式登录
func (s *AuthService) DevMode() bool {
	return s.provider == nil
}

// ==================== 登录流程 ====================

// BeginLogin 发起登录
func (s *AuthService) BeginLogin(ctx context.Context, client ClientInfo) (*LoginStart, error) {
	if s.DevMode() {
		user, err := s.store.Users.Upsert(ctx, &model.User{
			Email:     DevUserEmail,
			FirstName: DevUserFirstName,
			LastName:  DevUserLastName,
			IsAdmin:   true,
		}, devUpsertColumns)
		if err != nil {
			return nil, fmt.Errorf("创建开发账号失败: %w", err)
		}

		issued, err := s.issueSession(ctx, user, client)
		if err != nil {
			return nil, err
		}
		return &LoginStart{RedirectURL: RedirectHome, Session: issued}, nil
	}

	verifier, state, err := utils.GeneratePKCE()
	if err != nil {
		return nil, fmt.Errorf("生成 PKCE 参数失败: %w", err)
	}

	authURL, err := s.provider.AuthCodeURL(ctx, state, verifier)
	if err != nil {
		return nil, err
	}

	// state -> verifier，10 分钟有效，只能消费一次
	utils.SetCache(state, verifier)
	return &LoginStart{RedirectURL: authURL}, nil
}

// CompleteLogin 处理授权回调，upsert 用户并签发会话
func (s *AuthService) CompleteLogin(ctx context.Context, code, state string, client ClientInfo) (*IssuedSession, error) {
	if s.DevMode() {
		return nil, ErrInvalidState
	}

	verifier, ok := utils.PopCache(state)
	if !ok || code == "" {
		return nil, ErrInvalidState
	}

	claims, err := s.provider.Exchange(ctx, code, verifier)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Users.Upsert(ctx, &model.User{
		Email:           claims.Email,
		FirstName:       claims.GivenName,
		LastName:        claims.FamilyName,
		ProfileImageURL: claims.Picture,
		Subject:         claims.Subject,
	}, oidcUpsertColumns)
	if err != nil {
		return nil, fmt.Errorf("保存用户失败: %w", err)
	}

	return s.issueSession(ctx, user, client)
}

// Logout 删除会话
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.store.Sessions.Delete(ctx, sessionID)
}

// ==================== 会话 ====================

// ResolveSession 按 ID 加载会话与用户，不存在或已过期返回 nil
func (s *AuthService) ResolveSession(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.store.Sessions.GetWithUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.User == nil || session.IsExpired(s.now()) {
		return nil, nil
	}
	return session, nil
}

// CleanupExpiredSessions 清理过期会话，同时清理未完成登录遗留的 state
func (s *AuthService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	if pruned := utils.PruneExpiredCache(); pruned > 0 {
		zap.L().Debug("清理过期登录 state", zap.Int("count", pruned))
	}
	return s.store.Sessions.DeleteExpired(ctx, s.now())
}

func (s *AuthService) issueSession(ctx context.Context, user *model.User, client ClientInfo) (*IssuedSession, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserAgent: truncate(client.UserAgent, 255),
		IP:        truncate(client.IP, 64),
		ExpiresAt: s.now().Add(s.sessionTTL),
	}
	if err := s.store.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("创建会话失败: %w", err)
	}

	token, err := utils.GenerateSessionToken(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("签发会话失败: %w", err)
	}

	zap.L().Info("用户登录", zap.Int64("user_id", user.ID), zap.String("email", user.Email))
	return &IssuedSession{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
