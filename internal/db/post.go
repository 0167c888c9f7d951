package db

import "gorm.io/gorm"

// Category 定义了博客文章分类
type Category struct {
	gorm.Model
	Name  string `gorm:"size:100;not null"`
	Slug  string `gorm:"size:100;uniqueIndex;not null"`
	Posts []Post `gorm:"many2many:post_categories;"`
}

// BeforeSave 在 slug 缺省时从名称派生
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Slug = deriveSlug(c.Slug, c.Name)
	return nil
}

// Post 定义了博客文章模型，内容为富文本
type Post struct {
	gorm.Model
	Title         string `gorm:"size:200;not null"`
	Slug          string `gorm:"size:200;uniqueIndex;not null"`
	AuthorID      uint
	Author        User
	Content       string `gorm:"type:text"`
	FeaturedImage string `gorm:"size:500"`
	IsPublished   bool   `gorm:"default:false"`
	Categories    []Category `gorm:"many2many:post_categories;"`
}

// BeforeSave 在 slug 缺省时从标题派生
func (p *Post) BeforeSave(tx *gorm.DB) error {
	p.Slug = deriveSlug(p.Slug, p.Title)
	return nil
}
