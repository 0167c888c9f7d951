// Package storage 提供媒体文件的存储后端抽象：
// 调试模式写本地磁盘，生产模式写云端媒体库，后端在进程启动时解析一次。
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Kind 标识存储后端的类型
type Kind string

const (
	// KindLocal 表示本地磁盘存储
	KindLocal Kind = "local"
	// KindCloudinary 表示云端媒体库存储
	KindCloudinary Kind = "cloudinary"
	// KindUnbound 表示后端解析失败后的降级状态
	KindUnbound Kind = "unbound"
)

// 各内容实体的逻辑媒体目录
const (
	FolderBlog        = "blog_images"
	FolderNavbar      = "navbar"
	FolderHero        = "hero"
	FolderServices    = "services"
	FolderTeam        = "team"
	FolderProducts    = "products"
	FolderProducts360 = "products/360"
	FolderLeadership  = "leadership"
	FolderCompany     = "company"
	FolderAbout       = "about"
	FolderUploads     = "uploads"
)

// ErrMediaUnbound 表示媒体后端处于未绑定状态，写入被拒绝但站点继续运行
var ErrMediaUnbound = errors.New("media storage backend is unbound")

// Storage 是媒体存储后端的统一接口
type Storage interface {
	// Kind 返回后端类型
	Kind() Kind
	// Save 将文件写入指定逻辑目录并返回可公开访问的 URL
	Save(ctx context.Context, folder, filename string, r io.Reader) (string, error)
}

// IsUnbound 判断后端是否处于降级的未绑定状态
func IsUnbound(s Storage) bool {
	return s != nil && s.Kind() == KindUnbound
}

// Local 将媒体写入本地磁盘，目录按需创建
type Local struct {
	baseDir string
	urlPath string
}

// NewLocal 构造本地存储后端
func NewLocal(baseDir, urlPath string) *Local {
	return &Local{
		baseDir: baseDir,
		urlPath: strings.TrimRight(urlPath, "/"),
	}
}

// Kind 返回后端类型
func (l *Local) Kind() Kind {
	return KindLocal
}

// Save 将文件写入 <baseDir>/<folder>/<filename> 并返回站内 URL
func (l *Local) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(l.baseDir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", l.urlPath, folder, filename), nil
}

// unbound 是后端解析失败后的降级实现，记录失败原因供诊断
type unbound struct {
	reason string
}

// NewUnbound 构造未绑定后端
func NewUnbound(reason string) Storage {
	return &unbound{reason: reason}
}

func (u *unbound) Kind() Kind {
	return KindUnbound
}

func (u *unbound) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrMediaUnbound, u.reason)
}

// RemoteFactory 构造远端存储后端，测试可注入替身
type RemoteFactory func(cloudinaryURL string) (Storage, error)

// Resolve 按部署模式解析媒体存储后端，进程启动时调用一次。
// 调试模式固定使用本地磁盘；生产模式构造云端后端，
// 构造失败时记录诊断并降级为未绑定状态，而不是让站点启动失败。
func Resolve(debug bool, uploadDir, uploadURLPath, cloudinaryURL string, newRemote RemoteFactory, logger zerolog.Logger) Storage {
	if debug {
		return NewLocal(uploadDir, uploadURLPath)
	}

	if newRemote == nil {
		newRemote = NewCloudinary
	}

	remote, err := newRemote(cloudinaryURL)
	if err != nil {
		logger.Error().Err(err).Msg("media backend misconfigured, leaving storage unbound")
		return NewUnbound(err.Error())
	}

	return remote
}
