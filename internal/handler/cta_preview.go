package handler

import (
	"strings"
)

// routeRegistry 将裸路由名映射到站内路径，供 CTA 预览解析。
var routeRegistry = map[string]string{
	"home":      "/",
	"services":  "/services/",
	"products":  "/products/",
	"about":     "/about/",
	"contact":   "/contact/",
	"post_list": "/posts/",
	"book_demo": "/book-demo/",
}

// ctaPreview 描述后台对单个 CTA 的预览结果。
// 裸路由名解析失败时 Error 携带行内提示，预览本身不报错。
type ctaPreview struct {
	Text        string `json:"text"`
	Link        string `json:"link"`
	ResolvedURL string `json:"resolved_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

// buildCTAPreview 复现后台列表的 CTA 预览逻辑：
// 含 "/" 或 "." 的链接原样使用，其余按路由名解析。
func buildCTAPreview(text, link string) ctaPreview {
	preview := ctaPreview{Text: strings.TrimSpace(text), Link: strings.TrimSpace(link)}
	if preview.Text == "" {
		return preview
	}
	if preview.Link == "" {
		return preview
	}

	if strings.ContainsAny(preview.Link, "/.") {
		preview.ResolvedURL = preview.Link
		return preview
	}

	resolved, ok := routeRegistry[preview.Link]
	if !ok {
		preview.Error = "unknown route name: " + preview.Link
		return preview
	}

	preview.ResolvedURL = resolved
	return preview
}
