package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/db"
	"github.com/rearmsite/internal/service"
)

// ShowHome 返回首页数据：精选文章与公司区块合并在一个载荷里。
func (a *API) ShowHome(c *gin.Context) {
	posts, err := a.posts.AllPublished()
	if err != nil {
		a.renderFailure(c, "load home posts", err)
		return
	}

	categories, err := a.posts.ListCategories()
	if err != nil {
		a.renderFailure(c, "load categories", err)
		return
	}

	latest, err := a.posts.Recent(4, 0)
	if err != nil {
		a.renderFailure(c, "load latest posts", err)
		return
	}

	ceo, err := a.about.CEOMessage()
	if err != nil {
		a.renderFailure(c, "load ceo message", err)
		return
	}

	aboutContent, err := a.about.ActiveSnapshot()
	if err != nil && !errors.Is(err, service.ErrAboutNotFound) {
		a.renderFailure(c, "load about snapshot", err)
		return
	}

	featuredServices, err := a.services.ListFeatured(3)
	if err != nil {
		a.renderFailure(c, "load featured services", err)
		return
	}

	featuredProducts, err := a.products.Featured(3)
	if err != nil {
		a.renderFailure(c, "load featured products", err)
		return
	}

	featured, recent := splitHomePosts(posts)

	c.JSON(http.StatusOK, gin.H{
		"page_name":         db.HeroPageHome,
		"global":            a.globalContext(c),
		"posts":             posts,
		"featured_posts":    featured,
		"recent_posts":      recent,
		"categories":        categories,
		"blog_posts":        latest,
		"ceo":               ceo,
		"about_content":     aboutContent,
		"featured_services": featuredServices,
		"featured_products": featuredProducts,
	})
}

// 首页把最新文章拆成置顶的 3 篇与随后的 3 篇
func splitHomePosts(posts []db.Post) ([]db.Post, []db.Post) {
	if len(posts) <= 3 {
		return posts, nil
	}
	featured := posts[:3]
	rest := posts[3:]
	if len(rest) > 3 {
		rest = rest[:3]
	}
	return featured, rest
}

// ListPosts 返回分页的文章列表。
func (a *API) ListPosts(c *gin.Context) {
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)

	posts, err := a.posts.ListPublished(service.PostFilter{Page: page})
	if err != nil {
		a.renderFailure(c, "load posts", err)
		return
	}

	recent, err := a.posts.Recent(5, 0)
	if err != nil {
		a.renderFailure(c, "load recent posts", err)
		return
	}

	categories, err := a.posts.ListCategories()
	if err != nil {
		a.renderFailure(c, "load categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"global":       a.globalContext(c),
		"posts":        posts.Posts,
		"page":         posts.Page,
		"total_pages":  posts.TotalPages,
		"recent_posts": recent,
		"categories":   categories,
	})
}

// ShowPost 返回单篇文章详情，正文渲染为净化后的 HTML。
func (a *API) ShowPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := a.posts.GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondGeneralError(c, http.StatusNotFound, "Post not found")
			return
		}
		a.renderFailure(c, "load post", err)
		return
	}

	recent, err := a.posts.Recent(5, post.ID)
	if err != nil {
		a.renderFailure(c, "load recent posts", err)
		return
	}

	categories, err := a.posts.ListCategories()
	if err != nil {
		a.renderFailure(c, "load categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"global":       a.globalContext(c),
		"post":         post,
		"content_html": renderRichText(post.Content),
		"recent_posts": recent,
		"categories":   categories,
	})
}

// ListCategoryPosts 返回某个分类下的分页文章。
func (a *API) ListCategoryPosts(c *gin.Context) {
	slug := c.Param("slug")

	category, err := a.posts.GetCategoryBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondGeneralError(c, http.StatusNotFound, "Category not found")
			return
		}
		a.renderFailure(c, "load category", err)
		return
	}

	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	posts, err := a.posts.ListPublished(service.PostFilter{CategoryID: category.ID, Page: page})
	if err != nil {
		a.renderFailure(c, "load category posts", err)
		return
	}

	recent, err := a.posts.Recent(5, 0)
	if err != nil {
		a.renderFailure(c, "load recent posts", err)
		return
	}

	categories, err := a.posts.ListCategories()
	if err != nil {
		a.renderFailure(c, "load categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"global":       a.globalContext(c),
		"category":     category,
		"posts":        posts.Posts,
		"page":         posts.Page,
		"total_pages":  posts.TotalPages,
		"recent_posts": recent,
		"categories":   categories,
	})
}

// renderFailure 统一处理公开页面的读取失败：记录日志并返回通用 500。
func (a *API) renderFailure(c *gin.Context, operation string, err error) {
	a.logger.Error().Err(err).Str("operation", operation).Msg("public page query failed")
	respondGeneralError(c, http.StatusInternalServerError, "An error occurred. Please try again later.")
}
