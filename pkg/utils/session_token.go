package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ==================== 会话 Token ====================

// SessionTokenConfig 会话 cookie 签名配置
type SessionTokenConfig struct {
	SecretKey string        // 签名密钥
	TTL       time.Duration // 会话有效期
	Issuer    string        // 签发者
}

// DefaultSessionTokenConfig 默认配置
func DefaultSessionTokenConfig() *SessionTokenConfig {
	return &SessionTokenConfig{
		SecretKey: "ingaa-baby-store-secret-key",
		TTL:       30 * 24 * time.Hour,
		Issuer:    "ingaa-store",
	}
}

// 全局配置
var sessionTokenConfig = DefaultSessionTokenConfig()

// SetSessionTokenConfig 设置签名配置
func SetSessionTokenConfig(cfg *SessionTokenConfig) {
	sessionTokenConfig = cfg
}

// GetSessionTokenConfig 获取签名配置
func GetSessionTokenConfig() *SessionTokenConfig {
	return sessionTokenConfig
}

// SessionClaims cookie 中只携带会话 ID，用户信息每次请求从库中读取
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// GenerateSessionToken 为会话签发 Token
func GenerateSessionToken(sessionID string, expiresAt time.Time) (string, error) {
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenConfig.Issuer,
			Subject:   "session",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionTokenConfig.SecretKey))
}

// ParseSessionToken 校验签名与有效期，返回会话 ID
func ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(sessionTokenConfig.SecretKey), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" || claims.Subject != "session" {
		return "", errors.New("invalid token")
	}
	return claims.SessionID, nil
}
