package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ingaa_store/internal/api/dto"
	"ingaa_store/internal/middleware"
	"ingaa_store/internal/service"
)

// CookieConfig 会话 cookie 设置
type CookieConfig struct {
	Name   string
	Secure bool // 生产环境开启
}

// AuthController 登录、回调、登出与当前用户
type AuthController struct {
	authService *service.AuthService
	cookie      CookieConfig
}

// NewAuthController 创建认证控制器
func NewAuthController(authService *service.AuthService, cookie CookieConfig) *AuthController {
	return &AuthController{authService: authService, cookie: cookie}
}

// Login 发起登录
// @Summary 登录
// @Description 未配置 OIDC 时以开发管理员身份直接登录，否则跳转到身份提供方
// @Tags Auth
// @Success 302 {string} string "跳转"
// @Router /api/login [get]
func (ctrl *AuthController) Login(c *gin.Context) {
	start, err := ctrl.authService.BeginLogin(c.Request.Context(), clientInfo(c))
	if err != nil {
		zap.L().Error("发起登录失败", zap.Error(err))
		c.Redirect(http.StatusFound, service.RedirectAuthFailed)
		return
	}

	if start.Session != nil {
		ctrl.setSessionCookie(c, start.Session.Token, start.Session.ExpiresAt)
	}
	c.Redirect(http.StatusFound, start.RedirectURL)
}

// Callback 授权回调
// @Summary OIDC 授权回调
// @Tags Auth
// @Param code query string true "授权码"
// @Param state query string true "state"
// @Success 302 {string} string "跳转首页，失败时带 error=auth_failed"
// @Router /api/auth/callback [get]
func (ctrl *AuthController) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		zap.L().Warn("用户拒绝授权", zap.String("error", errParam))
		c.Redirect(http.StatusFound, service.RedirectAuthFailed)
		return
	}

	issued, err := ctrl.authService.CompleteLogin(c.Request.Context(), c.Query("code"), c.Query("state"), clientInfo(c))
	if err != nil {
		zap.L().Warn("登录回调失败", zap.Error(err))
		c.Redirect(http.StatusFound, service.RedirectAuthFailed)
		return
	}

	ctrl.setSessionCookie(c, issued.Token, issued.ExpiresAt)
	c.Redirect(http.StatusFound, service.RedirectHome)
}

// Logout 登出
// @Summary 登出
// @Tags Auth
// @Success 302 {string} string "跳转首页"
// @Router /api/logout [get]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.authService.Logout(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		zap.L().Warn("删除会话失败", zap.Error(err))
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctrl.cookie.Name, "", -1, "/", "", ctrl.cookie.Secure, true)
	c.Redirect(http.StatusFound, service.RedirectHome)
}

// CurrentUser 当前用户
// @Summary 当前登录用户
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserInfo
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/user [get]
func (ctrl *AuthController) CurrentUser(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	success(c, http.StatusOK, dto.NewUserInfo(user))
}

func (ctrl *AuthController) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctrl.cookie.Name, token, maxAge, "/", "", ctrl.cookie.Secure, true)
}

func clientInfo(c *gin.Context) service.ClientInfo {
	return service.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	}
}
