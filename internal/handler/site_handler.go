package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/db"
	"github.com/rearmsite/internal/service"
)

// ListServices 返回服务列表页数据。
func (a *API) ListServices(c *gin.Context) {
	services, err := a.services.ListFeatured(0)
	if err != nil {
		a.renderFailure(c, "load services", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page_name": db.HeroPageServices,
		"global":    a.globalContext(c),
		"services":  services,
	})
}

// ShowService 返回单个服务详情。
func (a *API) ShowService(c *gin.Context) {
	svc, err := a.services.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondGeneralError(c, http.StatusNotFound, "Service not found")
			return
		}
		a.renderFailure(c, "load service", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"global":       a.globalContext(c),
		"service":      svc,
		"content_html": renderRichText(svc.Content),
	})
}

// ListProducts 返回产品列表，按产品类型分组。
func (a *API) ListProducts(c *gin.Context) {
	groups, err := a.products.ListActiveGrouped()
	if err != nil {
		a.renderFailure(c, "load products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page_name":          db.HeroPageProducts,
		"global":             a.globalContext(c),
		"processed_products": groups.Processed,
		"raw_products":       groups.Raw,
	})
}

// ShowProduct 返回产品详情与同分类的关联产品。
func (a *API) ShowProduct(c *gin.Context) {
	product, err := a.products.GetActiveBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondGeneralError(c, http.StatusNotFound, "Product not found")
			return
		}
		a.renderFailure(c, "load product", err)
		return
	}

	related, err := a.products.Related(product, 4)
	if err != nil {
		a.renderFailure(c, "load related products", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"global":           a.globalContext(c),
		"product":          product,
		"related_products": related,
	})
}

// ShowAbout 返回关于页数据：快照、管理层与团队成员。
// 快照缺失时页面仍然渲染，SEO 字段使用兜底文案。
func (a *API) ShowAbout(c *gin.Context) {
	about, err := a.about.ActiveSnapshot()
	if err != nil && !errors.Is(err, service.ErrAboutNotFound) {
		a.renderFailure(c, "load about snapshot", err)
		return
	}

	leadership, err := a.about.ListLeadership()
	if err != nil {
		a.renderFailure(c, "load leadership", err)
		return
	}

	team, err := a.about.ListTeamForAbout()
	if err != nil {
		a.renderFailure(c, "load team members", err)
		return
	}

	metaTitle := "About Us | Your Company"
	metaDescription := "Learn about our company and team"
	var contentHTML string
	if about != nil {
		if about.MetaTitle != "" {
			metaTitle = about.MetaTitle
		}
		if about.MetaDescription != "" {
			metaDescription = about.MetaDescription
		}
		contentHTML = renderRichText(about.Content)
	}

	c.JSON(http.StatusOK, gin.H{
		"page_name":        db.HeroPageAbout,
		"global":           a.globalContext(c),
		"about_content":    about,
		"content_html":     contentHTML,
		"leadership":       leadership,
		"team_members":     team,
		"meta_title":       metaTitle,
		"meta_description": metaDescription,
	})
}

// ShowBookDemoPage 返回预约演示页数据。
func (a *API) ShowBookDemoPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page_name": db.HeroPageContact,
		"global":    a.globalContext(c),
	})
}
