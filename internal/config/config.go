package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ==================== 配置定义 ====================

// Config 应用配置
type Config struct {
	Env       string `mapstructure:"env"`
	Port      string `mapstructure:"port"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	OIDC      OIDCConfig      `mapstructure:"oidc"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Storage   StorageConfig   `mapstructure:"storage"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// DatabaseConfig 数据库
type DatabaseConfig struct {
	URL   string `mapstructure:"url"`
	Debug bool   `mapstructure:"debug"`
}

// SessionConfig 会话
type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
}

// OIDCConfig 第三方登录，ClientID / ClientSecret 为空时进入开发登录模式
type OIDCConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	IssuerURL    string `mapstructure:"issuer_url"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

// CORSConfig 跨域
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// StorageConfig 图片存储
type StorageConfig struct {
	Provider  string `mapstructure:"provider"` // local | s3
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Endpoint  string `mapstructure:"endpoint"`
	CDNDomain string `mapstructure:"cdn_domain"`
	BasePath  string `mapstructure:"base_path"`
	PublicURL string `mapstructure:"public_url"` // 本地存储对外访问前缀
}

// RateLimitConfig 写接口按 IP 限流
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// OIDCEnabled 是否配置了第三方登录
func (c *Config) OIDCEnabled() bool {
	return c.OIDC.ClientID != "" && c.OIDC.ClientSecret != ""
}

// ==================== 加载 ====================

// 环境变量名与配置键的映射
var envBindings = map[string]string{
	"env":                 "APP_ENV",
	"port":                "PORT",
	"log_level":           "LOG_LEVEL",
	"log_format":          "LOG_FORMAT",
	"database.url":        "DATABASE_URL",
	"database.debug":      "DATABASE_DEBUG",
	"session.secret":      "SESSION_SECRET",
	"session.ttl":         "SESSION_TTL",
	"session.cookie_name": "SESSION_COOKIE_NAME",
	"oidc.client_id":      "CLIENT_ID",
	"oidc.client_secret":  "CLIENT_SECRET",
	"oidc.issuer_url":     "ISSUER_URL",
	"oidc.redirect_url":   "OIDC_REDIRECT_URL",
	"cors.origins":        "CORS_ORIGINS",
	"storage.provider":    "STORAGE_PROVIDER",
	"storage.bucket":      "AWS_BUCKET",
	"storage.region":      "AWS_REGION",
	"storage.access_key":  "AWS_ACCESS_KEY_ID",
	"storage.secret_key":  "AWS_SECRET_ACCESS_KEY",
	"storage.endpoint":    "AWS_ENDPOINT",
	"storage.cdn_domain":  "AWS_CDN_DOMAIN",
	"storage.base_path":   "STORAGE_BASE_PATH",
	"storage.public_url":  "STORAGE_PUBLIC_URL",
	"rate_limit.rps":      "RATE_LIMIT_RPS",
	"rate_limit.burst":    "RATE_LIMIT_BURST",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("database.url", "")
	v.SetDefault("database.debug", false)
	v.SetDefault("session.secret", "ingaa-baby-store-secret-key")
	v.SetDefault("session.ttl", 30*24*time.Hour)
	v.SetDefault("session.cookie_name", "ingaa_sid")
	v.SetDefault("oidc.client_id", "")
	v.SetDefault("oidc.client_secret", "")
	v.SetDefault("oidc.issuer_url", "https://replit.com/oidc")
	v.SetDefault("oidc.redirect_url", "http://localhost:5000/api/auth/callback")
	v.SetDefault("cors.origins", []string{})
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.cdn_domain", "")
	v.SetDefault("storage.base_path", "./uploads")
	v.SetDefault("storage.public_url", "/uploads")
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)
}

// Load 加载配置，优先级: 环境变量 > 配置文件 > 默认值
// 启动时先读取工作目录下的 .env (不存在则忽略)
// configFile 为空时不读取配置文件
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("读取 .env 失败: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	cfg.CORS.Origins = normalizeOrigins(cfg.CORS.Origins)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验必填项
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET 不能为空")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL 必须大于 0")
	}
	switch c.Storage.Provider {
	case "local", "s3":
	default:
		return fmt.Errorf("不支持的存储提供者: %s", c.Storage.Provider)
	}
	if c.OIDCEnabled() && c.OIDC.IssuerURL == "" {
		return errors.New("启用 OIDC 时 ISSUER_URL 不能为空")
	}
	return nil
}

func normalizeOrigins(origins []string) []string {
	var out []string
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
