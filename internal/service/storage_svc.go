package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ingaa_store/pkg/utils"
)

// ==================== 接口定义 ====================

// StorageProvider 存储提供者接口
type StorageProvider interface {
	// Upload 上传文件，ext 带点 (如 ".png")，返回公开访问URL
	Upload(ctx context.Context, data []byte, ext string, contentType string) (url string, err error)

	// Delete 删除文件
	Delete(ctx context.Context, url string) error

	// Owns 判断 URL 是否由本存储生成
	Owns(url string) bool
}

// ==================== 配置 ====================

type StorageConfig struct {
	Provider  string // "s3" | "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // S3 兼容端点 (MinIO、腾讯云COS等)，为空时使用 AWS
	CDNDomain string // CDN域名 (可选)
	BasePath  string // s3: key 前缀；local: 本地目录
	PublicURL string // local: 对外访问前缀
}

// 允许上传的图片类型
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ==================== 工厂方法 ====================

func NewStorageProvider(cfg *StorageConfig) (StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3Storage(cfg)
	case "local", "":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("不支持的存储提供者: %s", cfg.Provider)
	}
}

// ==================== StorageService 商品图片上传 ====================

// StorageService 商品图片上传，校验类型后交给 StorageProvider
type StorageService struct {
	provider StorageProvider
	client   *resty.Client
}

// NewStorageService 创建存储服务，client 用于按 URL 抓取图片
func NewStorageService(provider StorageProvider, client *resty.Client) *StorageService {
	return &StorageService{provider: provider, client: client}
}

// UploadImage 上传图片，扩展名只由嗅探出的类型决定
func (s *StorageService) UploadImage(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ValidationError("Empty file")
	}
	if len(data) > utils.MaxImageSize {
		return "", ValidationError("Image too large")
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", ValidationError("Unsupported image type")
	}

	url, err := s.provider.Upload(ctx, data, ext, contentType)
	if err != nil {
		return "", fmt.Errorf("上传图片失败: %w", err)
	}
	zap.L().Info("图片已上传", zap.String("url", url), zap.Int("size", len(data)))
	return url, nil
}

// UploadFromURL 抓取网络图片后上传
func (s *StorageService) UploadFromURL(ctx context.Context, sourceURL string) (string, error) {
	data, _, err := utils.DownloadImage(ctx, s.client, sourceURL)
	if err != nil {
		return "", ValidationError("Failed to download image")
	}
	return s.UploadImage(ctx, data)
}

// Delete 删除本存储上传的图片，外部图片地址直接忽略
func (s *StorageService) Delete(ctx context.Context, url string) error {
	if !s.provider.Owns(url) {
		return nil
	}
	if err := s.provider.Delete(ctx, url); err != nil {
		return fmt.Errorf("删除图片失败: %w", err)
	}
	zap.L().Info("图片已删除", zap.String("url", url))
	return nil
}

// ==================== S3 实现 ====================

type S3Storage struct {
	client    *s3.Client
	bucket    string
	region    string
	endpoint  string
	cdnDomain string
	basePath  string
}

func NewS3Storage(cfg *StorageConfig) (*S3Storage, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("加载AWS配置失败: %w", err)
	}

	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  endpoint,
		cdnDomain: cfg.CDNDomain,
		basePath:  cfg.BasePath,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, data []byte, ext string, contentType string) (string, error) {
	key := generateKey(s.basePath, ext)

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("上传S3失败: %w", err)
	}

	return s.getPublicURL(key), nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key := s.extractKey(url)
	if key == "" || key == url {
		return fmt.Errorf("无法解析文件路径")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Storage) Owns(url string) bool {
	return strings.HasPrefix(url, s.urlPrefix())
}

func (s *S3Storage) getPublicURL(key string) string {
	return s.urlPrefix() + key
}

func (s *S3Storage) extractKey(url string) string {
	return strings.TrimPrefix(url, s.urlPrefix())
}

func (s *S3Storage) urlPrefix() string {
	switch {
	case s.cdnDomain != "":
		return fmt.Sprintf("https://%s/", s.cdnDomain)
	case s.endpoint != "":
		return fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	}
}

// ==================== 本地存储 ====================

// LocalStorage 写入本地目录，由路由以静态文件方式对外提供
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg *StorageConfig) (*LocalStorage, error) {
	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "./uploads"
	}
	baseURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if baseURL == "" {
		baseURL = "/uploads"
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, data []byte, ext string, contentType string) (string, error) {
	key := generateKey("", ext)
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("创建目录失败: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

func (s *LocalStorage) Owns(url string) bool {
	return strings.HasPrefix(url, s.baseURL+"/")
}

func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, s.baseURL+"/")
	if key == url || strings.Contains(key, "..") {
		return fmt.Errorf("无法解析文件路径")
	}

	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// ==================== 工具函数 ====================

// generateKey 生成 日期/uuid.ext 形式的对象 key
func generateKey(basePath, ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" {
		ext = ".jpg"
	}
	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	datePath := time.Now().Format("2006/01/02")
	if basePath != "" {
		return fmt.Sprintf("%s/%s/%s", strings.Trim(basePath, "/"), datePath, newFilename)
	}
	return fmt.Sprintf("%s/%s", datePath, newFilename)
}
