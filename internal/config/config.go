package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// AppConfig 汇总运行站点所需的基础配置。
// Debug 控制媒体存储策略：true 时使用本地磁盘，false 时使用云端媒体库。
type AppConfig struct {
	Port          string `env:"PORT" envDefault:"8080"`
	ListenAddr    string `env:"LISTEN_ADDR"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"rearmsite.db"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"rearmsite-dev-secret"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
	Debug         bool   `env:"DEBUG" envDefault:"true"`

	UploadDir     string `env:"UPLOAD_DIR" envDefault:"web/static/media"`
	UploadURLPath string `env:"UPLOAD_URL_PATH" envDefault:"/media"`

	// CloudinaryURL 为空或格式错误时，生产模式下的媒体后端会降级为未绑定状态。
	CloudinaryURL string `env:"CLOUDINARY_URL"`

	// DemoSchedulerURL 是预约演示成功后跳转的外部排期链接。
	DemoSchedulerURL string `env:"DEMO_SCHEDULER_URL" envDefault:"https://meet.brevo.com/reaarm"`

	AdminUserName string `env:"ADMIN_USER_NAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	SiteBaseURL string `env:"SITE_BASE_URL" envDefault:"https://www.reaarm.com"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env config: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.ListenAddr = strings.TrimSpace(cfg.ListenAddr); cfg.ListenAddr == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}

	return cfg, nil
}
