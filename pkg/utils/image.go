package utils

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// MaxImageSize 单张图片上限 10MB
const MaxImageSize = 10 << 20

// DownloadImage 下载网络图片，返回内容与 Content-Type
func DownloadImage(ctx context.Context, client *resty.Client, url string) ([]byte, string, error) {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("http get failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, "", fmt.Errorf("download failed with status: %d", resp.StatusCode())
	}

	data := resp.Body()
	if len(data) > MaxImageSize {
		return nil, "", fmt.Errorf("image too large: %d bytes", len(data))
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
