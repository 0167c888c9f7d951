package db

import "gorm.io/gorm"

// Service 定义了服务条目，长描述为富文本
type Service struct {
	gorm.Model
	Title            string `gorm:"size:200;not null"`
	ShortDescription string `gorm:"type:text"`
	Content          string `gorm:"type:text"`
	Image            string `gorm:"size:500"`
	IsFeatured       bool   `gorm:"default:false"`
	Slug             string `gorm:"size:200;uniqueIndex;not null"`
}

// BeforeSave 在 slug 缺省时从标题派生
func (s *Service) BeforeSave(tx *gorm.DB) error {
	s.Slug = deriveSlug(s.Slug, s.Title)
	return nil
}
