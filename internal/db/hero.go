package db

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// 固定的页面集合，每个页面至多一条 Hero 记录
const (
	HeroPageHome     = "home"
	HeroPageServices = "services"
	HeroPageProducts = "products"
	HeroPageAbout    = "about"
	HeroPageContact  = "contact"
)

// HeroPages 按展示顺序列出所有合法的页面取值
var HeroPages = []string{
	HeroPageHome,
	HeroPageServices,
	HeroPageProducts,
	HeroPageAbout,
	HeroPageContact,
}

var (
	// ErrInvalidHeroPage 表示页面取值不在固定集合内
	ErrInvalidHeroPage = errors.New("hero page is not a known page")
	// ErrInvalidCTALink 表示 CTA 链接不满足三种允许的形态
	ErrInvalidCTALink = errors.New("cta link must be a full URL, a path, or a route name")
)

// ctaLinkPattern 允许三种形态：完整 URL（https?://...）、站内路径（/...）、裸路由名（字母数字连字符）
var ctaLinkPattern = regexp.MustCompile(`^(https?://|/|[\w-]+$)`)

// HeroSection 定义了页面头图横幅，含主次两组 CTA
type HeroSection struct {
	gorm.Model
	Page             string `gorm:"size:20;uniqueIndex;not null"`
	BackgroundImage  string `gorm:"size:500"`
	Title            string `gorm:"size:100;not null"`
	Subtitle         string `gorm:"type:text"`
	PrimaryCTAText   string `gorm:"size:50"`
	PrimaryCTALink   string `gorm:"size:200"`
	SecondaryCTAText string `gorm:"size:50"`
	SecondaryCTALink string `gorm:"size:200"`
}

// BeforeSave 校验页面枚举与两条 CTA 链接
func (h *HeroSection) BeforeSave(tx *gorm.DB) error {
	if !IsValidHeroPage(h.Page) {
		return ErrInvalidHeroPage
	}
	if !IsValidCTALink(h.PrimaryCTALink) || !IsValidCTALink(h.SecondaryCTALink) {
		return ErrInvalidCTALink
	}
	return nil
}

// IsValidHeroPage 判断页面取值是否在固定集合内
func IsValidHeroPage(page string) bool {
	for _, p := range HeroPages {
		if p == page {
			return true
		}
	}
	return false
}

// IsValidCTALink 校验 CTA 链接形态，空链接视为合法（按钮无跳转）
func IsValidCTALink(link string) bool {
	if strings.TrimSpace(link) == "" {
		return true
	}
	return ctaLinkPattern.MatchString(link)
}
