package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ingaa_store/internal/model"
	"ingaa_store/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeResolver 内存会话
type fakeResolver struct {
	sessions map[string]*model.Session
	err      error
}

func (f *fakeResolver) ResolveSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[sessionID], nil
}

func newResolver() *fakeResolver {
	shopper := &model.User{Email: "shopper@test.com"}
	shopper.ID = 1
	admin := &model.User{Email: "admin@test.com", IsAdmin: true}
	admin.ID = 2
	return &fakeResolver{sessions: map[string]*model.Session{
		"sid-shopper": {ID: "sid-shopper", UserID: 1, User: shopper},
		"sid-admin":   {ID: "sid-admin", UserID: 2, User: admin},
	}}
}

func setupAuthRouter(resolver SessionResolver) *gin.Engine {
	r := gin.New()
	r.Use(SessionAuth(resolver, "ingaa_sid"))
	r.GET("/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetUserID(c),
			"audit_id": AuditActor(c.Request.Context()),
		})
	})
	r.GET("/private", RequireAuth(), func(c *gin.Context) {
		user := CurrentUserFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func requestWithSession(t *testing.T, r *gin.Engine, path, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		token, err := utils.GenerateSessionToken(sessionID, time.Now().Add(time.Hour))
		if err != nil {
			t.Fatalf("utils.GenerateSessionToken() error = %v", err)
		}
		req.AddCookie(&http.Cookie{Name: "ingaa_sid", Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuth_Gates(t *testing.T) {
	r := setupAuthRouter(newResolver())

	tests := []struct {
		name       string
		path       string
		sessionID  string
		wantStatus int
		wantBody   string
	}{
		{"匿名访问公开接口", "/public", "", http.StatusOK, `"user_id":0`},
		{"登录用户访问公开接口", "/public", "sid-shopper", http.StatusOK, `"audit_id":1`},
		{"匿名访问需登录接口", "/private", "", http.StatusUnauthorized, "Unauthorized"},
		{"失效会话按匿名处理", "/private", "sid-gone", http.StatusUnauthorized, "Unauthorized"},
		{"登录用户访问需登录接口", "/private", "sid-shopper", http.StatusOK, "shopper@test.com"},
		{"匿名访问后台", "/admin", "", http.StatusUnauthorized, "Unauthorized"},
		{"普通用户访问后台", "/admin", "sid-shopper", http.StatusForbidden, "Forbidden - Admin access required"},
		{"管理员访问后台", "/admin", "sid-admin", http.StatusOK, `"ok":true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := requestWithSession(t, r, tt.path, tt.sessionID)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestSessionAuth_TamperedCookie(t *testing.T) {
	r := setupAuthRouter(newResolver())

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "ingaa_sid", Value: "not-a-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_ResolverError(t *testing.T) {
	r := setupAuthRouter(&fakeResolver{err: errors.New("db down")})

	w := requestWithSession(t, r, "/public", "sid-shopper")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)
}
