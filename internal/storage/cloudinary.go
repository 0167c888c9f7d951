package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// webpFormat 是云端统一转换的图片格式
const webpFormat = "webp"

// Cloudinary 将媒体上传到 Cloudinary，统一转为 webp 并放入逻辑目录
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary 从 CLOUDINARY_URL 构造云端后端
func NewCloudinary(cloudinaryURL string) (Storage, error) {
	trimmed := strings.TrimSpace(cloudinaryURL)
	if trimmed == "" {
		return nil, errors.New("cloudinary url is not configured")
	}

	cld, err := cloudinary.NewFromURL(trimmed)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary client: %w", err)
	}

	return &Cloudinary{cld: cld}, nil
}

// Kind 返回后端类型
func (c *Cloudinary) Kind() Kind {
	return KindCloudinary
}

// Save 上传文件并返回 HTTPS 访问地址
func (c *Cloudinary) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	publicID := strings.TrimSuffix(filename, path.Ext(filename))

	result, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
		Format:   webpFormat,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
