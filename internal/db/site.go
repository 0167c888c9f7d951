package db

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"
)

var (
	// ErrMetaTitleTooLong 表示 SEO 标题超过 60 字符的上限
	ErrMetaTitleTooLong = errors.New("about meta title exceeds 60 characters")
	// ErrMetaDescriptionTooLong 表示 SEO 描述超过 160 字符的上限
	ErrMetaDescriptionTooLong = errors.New("about meta description exceeds 160 characters")
)

// Navbar 保存站点名称与 Logo，约定只取第一行
type Navbar struct {
	gorm.Model
	SiteName string `gorm:"size:100;not null"`
	Logo     string `gorm:"size:500"`
}

// AboutSection 保存关于页快照，读取时取最新的启用行
type AboutSection struct {
	gorm.Model
	Title           string `gorm:"size:200;not null"`
	Subtitle        string `gorm:"size:200"`
	PhoneNumber     string `gorm:"size:20"`
	Content         string `gorm:"type:text"`
	MainImage       string `gorm:"size:500"`
	SecondaryImage  string `gorm:"size:500"`
	MetaTitle       string `gorm:"size:60"`
	MetaDescription string `gorm:"size:160"`
	IsActive        bool   `gorm:"default:true"`
}

// BeforeSave 校验 SEO 字段长度，sqlite 不会强制 size 标签
func (a *AboutSection) BeforeSave(tx *gorm.DB) error {
	if utf8.RuneCountInString(a.MetaTitle) > 60 {
		return ErrMetaTitleTooLong
	}
	if utf8.RuneCountInString(a.MetaDescription) > 160 {
		return ErrMetaDescriptionTooLong
	}
	return nil
}

// CompanyInfo 保存页脚的公司信息，后台保证单行
type CompanyInfo struct {
	gorm.Model
	Name         string `gorm:"size:100;not null"`
	Logo         string `gorm:"size:500"`
	Address      string `gorm:"type:text"`
	PhoneNumber1 string `gorm:"size:20"`
	PhoneNumber2 string `gorm:"size:20"`
	Email        string `gorm:"size:255"`
	SocialLinks  []SocialMedia `gorm:"foreignKey:CompanyID"`
}

// 社媒平台枚举
const (
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformInstagram = "instagram"
	PlatformLinkedIn  = "linkedin"
	PlatformYouTube   = "youtube"
)

// SocialMedia 定义了公司社媒链接
type SocialMedia struct {
	gorm.Model
	CompanyID uint
	Platform  string `gorm:"size:20;not null"`
	URL       string `gorm:"size:255;not null"`
}

// IconClass 返回前端 FontAwesome 图标类名
func (s SocialMedia) IconClass() string {
	return "fab fa-" + s.Platform
}
