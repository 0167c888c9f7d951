package db

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"
)

// ErrHomeExcerptTooLong 表示首页寄语超过 200 字符的上限
var ErrHomeExcerptTooLong = errors.New("leadership home excerpt exceeds 200 characters")

// TeamMember 定义了团队成员
// SortOrder 值越小越靠前
// ShowOnAbout 标记是否在关于页展示
type TeamMember struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	Position    string `gorm:"size:100;not null"`
	Bio         string `gorm:"type:text"`
	Image       string `gorm:"size:500"`
	ImageAlt    string `gorm:"size:100"`
	LinkedIn    string `gorm:"size:255"`
	Twitter     string `gorm:"size:255"`
	Facebook    string `gorm:"size:255"`
	SortOrder   int    `gorm:"default:0"`
	IsActive    bool   `gorm:"default:true"`
	ShowOnAbout bool   `gorm:"default:true"`
}

// Leadership 定义了管理层成员，含首页寄语与完整简介
type Leadership struct {
	gorm.Model
	Name         string `gorm:"size:100;not null"`
	Title        string `gorm:"size:100;not null"`
	Photo        string `gorm:"size:500"`
	HomeExcerpt  string `gorm:"size:200"`
	FullBio      string `gorm:"type:text"`
	IsCEO        bool   `gorm:"default:false"`
	DisplayOrder int    `gorm:"default:0"`
}

// TableName 返回自定义表名，避免复数化歧义
func (Leadership) TableName() string {
	return "leadership"
}

// BeforeSave 校验首页寄语长度，sqlite 不会强制 size 标签
func (l *Leadership) BeforeSave(tx *gorm.DB) error {
	if utf8.RuneCountInString(l.HomeExcerpt) > 200 {
		return ErrHomeExcerptTooLong
	}
	return nil
}
