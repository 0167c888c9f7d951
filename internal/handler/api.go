package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/service"
	"github.com/rearmsite/internal/storage"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	posts        *service.PostService
	products     *service.ProductService
	services     *service.ServiceService
	about        *service.AboutService
	site         *service.SiteService
	newsletter   *service.NewsletterService
	partnerships *service.PartnershipService
	bookings     *service.DemoBookingService
	media        storage.Storage
	logger       zerolog.Logger
}

const globalContextKey = "__global_context"

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, media storage.Storage, schedulerURL string, logger zerolog.Logger) *API {
	return &API{
		db:           gdb,
		posts:        service.NewPostService(gdb),
		products:     service.NewProductService(gdb),
		services:     service.NewServiceService(gdb),
		about:        service.NewAboutService(gdb),
		site:         service.NewSiteService(gdb),
		newsletter:   service.NewNewsletterService(gdb),
		partnerships: service.NewPartnershipService(gdb),
		bookings:     service.NewDemoBookingService(gdb, schedulerURL),
		media:        media,
		logger:       logger,
	}
}

// globalContext 为每个页面注入全站共享内容：导航栏、各页 Hero、页脚公司信息。
// 每个请求内只计算一次，结果缓存在 gin 上下文中。
func (a *API) globalContext(c *gin.Context) gin.H {
	if cached, exists := c.Get(globalContextKey); exists {
		if view, ok := cached.(gin.H); ok {
			return view
		}
	}

	navbar, err := a.site.Navbar()
	if err != nil {
		a.logger.Error().Err(err).Msg("load navbar for global context")
	}
	heroes, err := a.site.HeroSections()
	if err != nil {
		a.logger.Error().Err(err).Msg("load hero sections for global context")
	}
	company, err := a.site.Company()
	if err != nil {
		a.logger.Error().Err(err).Msg("load company info for global context")
	}

	view := gin.H{
		"navbar":        navbar,
		"hero_sections": heroes,
		"company":       company,
		"current_year":  time.Now().Year(),
	}
	c.Set(globalContextKey, view)
	return view
}
