package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

// ==================== 身份提供方 ====================

// IdentityClaims 用户信息端点返回的身份声明
type IdentityClaims struct {
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

//go:generate mockgen -source=identity.go -destination=identity_mock_test.go -package=service

// IdentityProvider OIDC 授权码流程
type IdentityProvider interface {
	// AuthCodeURL 构造跳转到提供方的授权地址，challenge 由 verifier 按 S256 派生
	AuthCodeURL(ctx context.Context, state, codeVerifier string) (string, error)
	// Exchange 用授权码换取 token 并读取用户信息
	Exchange(ctx context.Context, code, codeVerifier string) (*IdentityClaims, error)
}

// OIDCConfig OIDC 客户端配置
type OIDCConfig struct {
	ClientID     string
	ClientSecret string
	IssuerURL    string
	RedirectURL  string
}

// discoveryDocument /.well-known/openid-configuration 中用到的字段
type discoveryDocument struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
}

// OIDCProvider 基于 oauth2 + resty 的 IdentityProvider 实现
// 发现文档在首次使用时拉取并缓存
type OIDCProvider struct {
	cfg    OIDCConfig
	client *resty.Client

	mu        sync.Mutex
	discovery *discoveryDocument
}

// NewOIDCProvider 创建 OIDC 提供方
func NewOIDCProvider(cfg OIDCConfig, client *resty.Client) *OIDCProvider {
	return &OIDCProvider{cfg: cfg, client: client}
}

// AuthCodeURL 构造授权地址
func (p *OIDCProvider) AuthCodeURL(ctx context.Context, state, codeVerifier string) (string, error) {
	oauthCfg, _, err := p.oauth2Config(ctx)
	if err != nil {
		return "", err
	}
	return oauthCfg.AuthCodeURL(state, oauth2.S256ChallengeOption(codeVerifier)), nil
}

// Exchange 换取 token 并拉取 userinfo
func (p *OIDCProvider) Exchange(ctx context.Context, code, codeVerifier string) (*IdentityClaims, error) {
	oauthCfg, doc, err := p.oauth2Config(ctx)
	if err != nil {
		return nil, err
	}

	// token 交换复用 resty 底层的 http.Client
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client.GetClient())
	token, err := oauthCfg.Exchange(ctx, code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return nil, fmt.Errorf("换取 token 失败: %w", err)
	}

	var claims IdentityClaims
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&claims).
		Get(doc.UserinfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("请求 userinfo 失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("userinfo 返回异常状态: %d", resp.StatusCode())
	}
	if claims.Email == "" {
		return nil, errors.New("userinfo 缺少 email")
	}
	return &claims, nil
}

func (p *OIDCProvider) oauth2Config(ctx context.Context) (*oauth2.Config, *discoveryDocument, error) {
	doc, err := p.discover(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &oauth2.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		RedirectURL:  p.cfg.RedirectURL,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  doc.AuthorizationEndpoint,
			TokenURL: doc.TokenEndpoint,
		},
	}, doc, nil
}

func (p *OIDCProvider) discover(ctx context.Context) (*discoveryDocument, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.discovery != nil {
		return p.discovery, nil
	}

	wellKnown := strings.TrimSuffix(p.cfg.IssuerURL, "/") + "/.well-known/openid-configuration"
	var doc discoveryDocument
	// 部分提供方以 text/plain 返回发现文档
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&doc).
		ForceContentType("application/json").
		Get(wellKnown)
	if err != nil {
		return nil, fmt.Errorf("拉取 OIDC 发现文档失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("OIDC 发现文档返回异常状态: %d", resp.StatusCode())
	}
	if doc.AuthorizationEndpoint == "" || doc.TokenEndpoint == "" || doc.UserinfoEndpoint == "" {
		return nil, errors.New("OIDC 发现文档缺少必要端点")
	}

	p.discovery = &doc
	return p.discovery, nil
}
