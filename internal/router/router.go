package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("rearmsite_session", store))

	// 本地上传文件的静态服务，生产环境文件直接由对象存储返回完整 URL
	if uploadDir != "" && uploadURLPath != "" {
		r.Static(uploadURLPath, uploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 前台页面
	r.GET("/", api.ShowHome)
	r.GET("/posts/", api.ListPosts)
	r.GET("/post/:slug/", api.ShowPost)
	r.GET("/category/:slug/", api.ListCategoryPosts)
	r.GET("/services/", api.ListServices)
	r.GET("/services/:slug/", api.ShowService)
	r.GET("/products/", api.ListProducts)
	r.GET("/product/:slug/", api.ShowProduct)
	r.GET("/about/", api.ShowAbout)
	r.GET("/book-demo/", api.ShowBookDemoPage)

	// 前台表单提交
	r.POST("/subscribe/", api.Subscribe)
	r.POST("/contact/", api.SubmitContact)
	r.POST("/book-demo/", api.BookDemo)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/dashboard", api.Dashboard)
			auth.POST("/upload_media", api.UploadMedia)

			// API路由
			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/posts", api.AdminListPosts)
				adminAPI.POST("/posts", api.AdminCreatePost)
				adminAPI.PUT("/posts/:id", api.AdminUpdatePost)
				adminAPI.DELETE("/posts/:id", api.AdminDeletePost)

				adminAPI.GET("/categories", api.AdminListCategories)
				adminAPI.POST("/categories", api.AdminCreateCategory)
				adminAPI.DELETE("/categories/:id", api.AdminDeleteCategory)

				adminAPI.GET("/services", api.AdminListServices)
				adminAPI.POST("/services", api.AdminCreateService)
				adminAPI.PUT("/services/:id", api.AdminUpdateService)
				adminAPI.DELETE("/services/:id", api.AdminDeleteService)

				adminAPI.GET("/products", api.AdminListProducts)
				adminAPI.POST("/products", api.AdminCreateProduct)
				adminAPI.PUT("/products/:id", api.AdminUpdateProduct)
				adminAPI.DELETE("/products/:id", api.AdminDeleteProduct)

				adminAPI.GET("/product-categories", api.AdminListProductCategories)
				adminAPI.POST("/product-categories", api.AdminCreateProductCategory)
				adminAPI.DELETE("/product-categories/:id", api.AdminDeleteProductCategory)

				adminAPI.GET("/team", api.AdminListTeam)
				adminAPI.POST("/team", api.AdminSaveTeamMember)
				adminAPI.DELETE("/team/:id", api.AdminDeleteTeamMember)

				adminAPI.GET("/leadership", api.AdminListLeadership)
				adminAPI.POST("/leadership", api.AdminSaveLeadership)
				adminAPI.DELETE("/leadership/:id", api.AdminDeleteLeadership)

				adminAPI.POST("/about", api.AdminSaveAbout)
				adminAPI.POST("/navbar", api.AdminSaveNavbar)

				adminAPI.POST("/company", api.AdminCreateCompany)
				adminAPI.PUT("/company", api.AdminUpdateCompany)
				adminAPI.POST("/social-links", api.AdminAddSocialLink)
				adminAPI.DELETE("/social-links/:id", api.AdminDeleteSocialLink)

				adminAPI.GET("/heroes", api.AdminListHeroes)
				adminAPI.POST("/heroes", api.AdminCreateHero)
				adminAPI.PUT("/heroes/:id", api.AdminUpdateHero)
				adminAPI.DELETE("/heroes/:id", api.AdminDeleteHero)

				adminAPI.GET("/subscribers", api.AdminListSubscribers)
				adminAPI.GET("/partnerships", api.AdminListPartnerships)
				adminAPI.GET("/bookings", api.AdminListBookings)
			}
		}
	}

	return r
}
