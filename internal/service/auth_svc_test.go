package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ingaa_store/internal/model"
	"ingaa_store/pkg/utils"
)

var testClient = ClientInfo{UserAgent: "go-test", IP: "127.0.0.1"}

func TestAuthService_DevLogin(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewAuthService(store, nil, time.Hour)
	ctx := context.Background()

	require.True(t, svc.DevMode())

	start, err := svc.BeginLogin(ctx, testClient)
	require.NoError(t, err)
	assert.Equal(t, RedirectHome, start.RedirectURL)
	require.NotNil(t, start.Session)
	assert.Equal(t, DevUserEmail, start.Session.User.Email)
	assert.True(t, start.Session.User.IsAdmin)

	// cookie 中的 token 能解析回会话
	sessionID, err := utils.ParseSessionToken(start.Session.Token)
	require.NoError(t, err)

	session, err := svc.ResolveSession(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, start.Session.User.ID, session.User.ID)
	assert.Equal(t, "go-test", session.UserAgent)

	// 再次登录不会产生重复用户
	_, err = svc.BeginLogin(ctx, testClient)
	require.NoError(t, err)
	count, err := store.Users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// 登出后会话失效
	require.NoError(t, svc.Logout(ctx, sessionID))
	session, err = svc.ResolveSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthService_OIDCLogin(t *testing.T) {
	store := setupServiceTestDB(t)
	ctrl := gomock.NewController(t)
	provider := NewMockIdentityProvider(ctrl)
	svc := NewAuthService(store, provider, time.Hour)
	ctx := context.Background()

	var state, authVerifier string
	provider.EXPECT().
		AuthCodeURL(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s, v string) (string, error) {
			state, authVerifier = s, v
			return "https://idp.test/authorize?state=" + s, nil
		})

	start, err := svc.BeginLogin(ctx, testClient)
	require.NoError(t, err)
	assert.Nil(t, start.Session)
	assert.Equal(t, "https://idp.test/authorize?state="+state, start.RedirectURL)

	provider.EXPECT().
		Exchange(gomock.Any(), "auth-code", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, verifier string) (*IdentityClaims, error) {
			// 回调时取回的 verifier 与授权时一致
			assert.Equal(t, authVerifier, verifier)
			return &IdentityClaims{
				Subject:    "sub-123",
				Email:      "mom@test.com",
				GivenName:  "Mia",
				FamilyName: "Lee",
				Picture:    "https://img.test/mia.png",
			}, nil
		})

	issued, err := svc.CompleteLogin(ctx, "auth-code", state, testClient)
	require.NoError(t, err)
	assert.Equal(t, "mom@test.com", issued.User.Email)
	assert.Equal(t, "Mia", issued.User.FirstName)
	assert.Equal(t, "sub-123", issued.User.Subject)
	assert.False(t, issued.User.IsAdmin)

	// state 只能使用一次
	_, err = svc.CompleteLogin(ctx, "auth-code", state, testClient)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAuthService_CompleteLogin_ProviderError(t *testing.T) {
	store := setupServiceTestDB(t)
	ctrl := gomock.NewController(t)
	provider := NewMockIdentityProvider(ctrl)
	svc := NewAuthService(store, provider, time.Hour)

	utils.SetCache("state-err", "verifier")
	provider.EXPECT().
		Exchange(gomock.Any(), "bad", "verifier").
		Return(nil, errors.New("invalid_grant"))

	_, err := svc.CompleteLogin(context.Background(), "bad", "state-err", testClient)
	assert.Error(t, err)

	_, err = svc.CompleteLogin(context.Background(), "code", "unknown-state", testClient)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAuthService_ExpiredSessions(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewAuthService(store, nil, time.Hour)
	ctx := context.Background()

	user := createUser(t, store, "old@test.com", false)
	now := time.Now()
	require.NoError(t, store.Sessions.Create(ctx, &model.Session{ID: "expired", UserID: user.ID, ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, store.Sessions.Create(ctx, &model.Session{ID: "live", UserID: user.ID, ExpiresAt: now.Add(time.Hour)}))

	session, err := svc.ResolveSession(ctx, "expired")
	require.NoError(t, err)
	assert.Nil(t, session, "过期会话视为匿名")

	utils.SetCacheWithTTL("abandoned-state", "verifier", -time.Second)
	utils.SetCache("pending-state", "verifier")

	removed, err := svc.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	// 过期的登录 state 一并清理，未过期的保留
	_, ok := utils.PopCache("abandoned-state")
	assert.False(t, ok)
	_, ok = utils.PopCache("pending-state")
	assert.True(t, ok)

	session, err = svc.ResolveSession(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestUserService_SetAdmin(t *testing.T) {
	store := setupServiceTestDB(t)
	svc := NewUserService(store.Users)
	ctx := context.Background()

	user := createUser(t, store, "staff@test.com", false)

	updated, err := svc.SetAdmin(ctx, "staff@test.com", true)
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	got, err := store.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	_, err = svc.SetAdmin(ctx, "nobody@test.com", true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
