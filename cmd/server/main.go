package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rearmsite/internal/config"
	"github.com/rearmsite/internal/db"
	"github.com/rearmsite/internal/handler"
	"github.com/rearmsite/internal/logger"
	"github.com/rearmsite/internal/router"
	"github.com/rearmsite/internal/storage"
)

func main() {
	// .env 仅用于本地开发，缺失时忽略
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Debug)
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// 配置了管理员账号时确保其存在
	if err := db.EnsureUser(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure admin user")
	}

	// 媒体存储后端在启动时解析一次，解析失败不阻塞启动
	media := storage.Resolve(cfg.Debug, cfg.UploadDir, cfg.UploadURLPath, cfg.CloudinaryURL, nil, log)
	log.Info().Str("backend", string(media.Kind())).Msg("media storage resolved")

	api := handler.NewAPI(db.DB, media, cfg.DemoSchedulerURL, log)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret, cfg.UploadDir, cfg.UploadURLPath)
	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
