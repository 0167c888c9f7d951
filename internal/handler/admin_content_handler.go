package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/db"
	"github.com/rearmsite/internal/service"
)

// respondAdminError 将服务层错误映射为后台 API 的状态码。
func (a *API) respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrServiceNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrProductCategoryNotFound),
		errors.Is(err, service.ErrTeamMemberNotFound),
		errors.Is(err, service.ErrLeadershipNotFound),
		errors.Is(err, service.ErrHeroNotFound),
		errors.Is(err, service.ErrSocialLinkNotFound),
		errors.Is(err, service.ErrCompanyNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrProductTypeInvalid),
		errors.Is(err, service.ErrProductCategoryInUse),
		errors.Is(err, service.ErrCompanyInfoExists),
		errors.Is(err, service.ErrHeroPageTaken),
		errors.Is(err, db.ErrInvalidCTALink),
		errors.Is(err, db.ErrInvalidHeroPage),
		errors.Is(err, db.ErrHomeExcerptTooLong),
		errors.Is(err, db.ErrMetaTitleTooLong),
		errors.Is(err, db.ErrMetaDescriptionTooLong):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		a.logger.Error().Err(err).Msg("admin request failed")
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

// ---- 文章与分类 ----

type postRequest struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featured_image"`
	IsPublished   bool   `json:"is_published"`
	CategoryIDs   []uint `json:"category_ids"`
}

// AdminListPosts 返回全部文章。
func (a *API) AdminListPosts(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// AdminCreatePost 创建文章，作者为当前登录用户。
func (a *API) AdminCreatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, err := a.posts.Create(service.PostInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		IsPublished:   req.IsPublished,
		AuthorID:      currentUserID(c),
		CategoryIDs:   req.CategoryIDs,
	})
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// AdminUpdatePost 更新文章。
func (a *API) AdminUpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req postRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, err := a.posts.Update(id, service.PostInput{
		Title:         req.Title,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		IsPublished:   req.IsPublished,
		CategoryIDs:   req.CategoryIDs,
	})
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// AdminDeletePost 删除文章。
func (a *API) AdminDeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.posts.Delete(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type categoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AdminListCategories 返回全部文章分类。
func (a *API) AdminListCategories(c *gin.Context) {
	categories, err := a.posts.ListCategories()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// AdminCreateCategory 创建文章分类。
func (a *API) AdminCreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req, "invalid category payload") {
		return
	}
	category, err := a.posts.CreateCategory(req.Name, req.Slug)
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// AdminDeleteCategory 删除文章分类。
func (a *API) AdminDeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.posts.DeleteCategory(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- 服务 ----

type serviceRequest struct {
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description"`
	Content          string `json:"content"`
	Image            string `json:"image"`
	IsFeatured       bool   `json:"is_featured"`
}

// AdminListServices 返回全部服务。
func (a *API) AdminListServices(c *gin.Context) {
	services, err := a.services.ListAll()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// AdminCreateService 创建服务。
func (a *API) AdminCreateService(c *gin.Context) {
	var req serviceRequest
	if !bindJSON(c, &req, "invalid service payload") {
		return
	}
	svc, err := a.services.Create(service.ServiceInput{
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		Image:            req.Image,
		IsFeatured:       req.IsFeatured,
	})
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// AdminUpdateService 更新服务。
func (a *API) AdminUpdateService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req serviceRequest
	if !bindJSON(c, &req, "invalid service payload") {
		return
	}
	svc, err := a.services.Update(id, service.ServiceInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		Image:            req.Image,
		IsFeatured:       req.IsFeatured,
	})
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// AdminDeleteService 删除服务。
func (a *API) AdminDeleteService(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.services.Delete(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- 产品与产品分类 ----

type productRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	CategoryID  uint   `json:"category_id"`
	ProductType string `json:"product_type"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Image360    string `json:"image_360"`
	IsFeatured  bool   `json:"is_featured"`
	IsActive    bool   `json:"is_active"`
}

func (r productRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Slug:        r.Slug,
		CategoryID:  r.CategoryID,
		ProductType: r.ProductType,
		Description: r.Description,
		Image:       r.Image,
		Image360:    r.Image360,
		IsFeatured:  r.IsFeatured,
		IsActive:    r.IsActive,
	}
}

// AdminListProducts 返回全部产品。
func (a *API) AdminListProducts(c *gin.Context) {
	products, err := a.products.ListAll()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AdminCreateProduct 创建产品。
func (a *API) AdminCreateProduct(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, &req, "invalid product payload") {
		return
	}
	product, err := a.products.Create(req.toInput())
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// AdminUpdateProduct 更新产品。
func (a *API) AdminUpdateProduct(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	var req productRequest
	if !bindJSON(c, &req, "invalid product payload") {
		return
	}
	product, err := a.products.Update(id, req.toInput())
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// AdminDeleteProduct 删除产品。
func (a *API) AdminDeleteProduct(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.products.Delete(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminListProductCategories 返回全部产品分类。
func (a *API) AdminListProductCategories(c *gin.Context) {
	categories, err := a.products.ListCategories()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// AdminCreateProductCategory 创建产品分类。
func (a *API) AdminCreateProductCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req, "invalid category payload") {
		return
	}
	category, err := a.products.CreateCategory(req.Name, req.Slug)
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// AdminDeleteProductCategory 删除产品分类，仍被产品引用时拒绝。
func (a *API) AdminDeleteProductCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.products.DeleteCategory(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- 团队与管理层 ----

// AdminListTeam 返回全部团队成员。
func (a *API) AdminListTeam(c *gin.Context) {
	members, err := a.about.ListAllTeam()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_members": members})
}

// AdminSaveTeamMember 新建或更新团队成员。
func (a *API) AdminSaveTeamMember(c *gin.Context) {
	var member db.TeamMember
	if !bindJSON(c, &member, "invalid team member payload") {
		return
	}
	if err := a.about.SaveTeamMember(&member); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_member": member})
}

// AdminDeleteTeamMember 删除团队成员。
func (a *API) AdminDeleteTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.about.DeleteTeamMember(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminListLeadership 返回全部管理层成员。
func (a *API) AdminListLeadership(c *gin.Context) {
	members, err := a.about.ListLeadership()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leadership": members})
}

// AdminSaveLeadership 新建或更新管理层成员。
func (a *API) AdminSaveLeadership(c *gin.Context) {
	var member db.Leadership
	if !bindJSON(c, &member, "invalid leadership payload") {
		return
	}
	if err := a.about.SaveLeadership(&member); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leadership": member})
}

// AdminDeleteLeadership 删除管理层成员。
func (a *API) AdminDeleteLeadership(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.about.DeleteLeadership(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- 关于页快照 ----

// AdminSaveAbout 新建或更新关于页快照。
func (a *API) AdminSaveAbout(c *gin.Context) {
	var about db.AboutSection
	if !bindJSON(c, &about, "invalid about payload") {
		return
	}
	if err := a.about.SaveSnapshot(&about); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"about": about})
}

// ---- 导航栏、公司信息与 Hero ----

// AdminSaveNavbar 新建或更新导航栏配置。
func (a *API) AdminSaveNavbar(c *gin.Context) {
	var navbar db.Navbar
	if !bindJSON(c, &navbar, "invalid navbar payload") {
		return
	}
	if err := a.site.SaveNavbar(&navbar); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"navbar": navbar})
}

// AdminCreateCompany 创建公司信息，已存在时拒绝。
func (a *API) AdminCreateCompany(c *gin.Context) {
	var company db.CompanyInfo
	if !bindJSON(c, &company, "invalid company payload") {
		return
	}
	if err := a.site.CreateCompany(&company); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// AdminUpdateCompany 更新公司信息。
func (a *API) AdminUpdateCompany(c *gin.Context) {
	var company db.CompanyInfo
	if !bindJSON(c, &company, "invalid company payload") {
		return
	}
	if err := a.site.UpdateCompany(&company); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// AdminAddSocialLink 添加公司社媒链接。
func (a *API) AdminAddSocialLink(c *gin.Context) {
	var link db.SocialMedia
	if !bindJSON(c, &link, "invalid social link payload") {
		return
	}
	if err := a.site.AddSocialLink(&link); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"social_link": link})
}

// AdminDeleteSocialLink 删除公司社媒链接。
func (a *API) AdminDeleteSocialLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.site.DeleteSocialLink(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminListHeroes 返回全部 Hero，附带 CTA 预览。
func (a *API) AdminListHeroes(c *gin.Context) {
	heroes, err := a.site.HeroSections()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}

	items := make([]gin.H, 0, len(heroes))
	for _, page := range db.HeroPages {
		hero, ok := heroes[page]
		if !ok {
			continue
		}
		items = append(items, gin.H{
			"hero":          hero,
			"primary_cta":   buildCTAPreview(hero.PrimaryCTAText, hero.PrimaryCTALink),
			"secondary_cta": buildCTAPreview(hero.SecondaryCTAText, hero.SecondaryCTALink),
		})
	}
	c.JSON(http.StatusOK, gin.H{"heroes": items})
}

// AdminCreateHero 创建 Hero，每个页面至多一条。
func (a *API) AdminCreateHero(c *gin.Context) {
	var hero db.HeroSection
	if !bindJSON(c, &hero, "invalid hero payload") {
		return
	}
	if err := a.site.CreateHero(&hero); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"hero": hero})
}

// AdminUpdateHero 更新 Hero。
func (a *API) AdminUpdateHero(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	var hero db.HeroSection
	if !bindJSON(c, &hero, "invalid hero payload") {
		return
	}
	hero.ID = id
	if err := a.site.UpdateHero(&hero); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hero": hero})
}

// AdminDeleteHero 删除 Hero。
func (a *API) AdminDeleteHero(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.site.DeleteHero(id); err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ---- 意向记录：只读，后台不提供创建、修改与删除 ----

// AdminListSubscribers 返回订阅列表。
func (a *API) AdminListSubscribers(c *gin.Context) {
	subscribers, err := a.newsletter.ListSubscribers()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}

// AdminListPartnerships 返回合作意向列表。
func (a *API) AdminListPartnerships(c *gin.Context) {
	requests, err := a.partnerships.ListRequests()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// AdminListBookings 返回演示预约列表。
func (a *API) AdminListBookings(c *gin.Context) {
	bookings, err := a.bookings.ListBookings()
	if err != nil {
		a.respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// currentUserID 读取会话中的登录用户 id。
func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	if id, ok := session.Get("user_id").(uint); ok {
		return id
	}
	return 0
}
