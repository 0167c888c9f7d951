package db

import "gorm.io/gorm"

const (
	// ProductTypeProcessed 表示加工类产品
	ProductTypeProcessed = "type1"
	// ProductTypeRaw 表示原料类产品
	ProductTypeRaw = "type2"
)

// ProductCategory 定义了产品分类，名称与 slug 均唯一
type ProductCategory struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null"`
	Slug string `gorm:"size:100;uniqueIndex;not null"`
}

// TableName 返回自定义表名，避免复数化歧义
func (ProductCategory) TableName() string {
	return "product_categories"
}

// BeforeSave 在 slug 缺省时从名称派生
func (c *ProductCategory) BeforeSave(tx *gorm.DB) error {
	c.Slug = deriveSlug(c.Slug, c.Name)
	return nil
}

// Product 定义了产品模型
// Image360 为可选的全景图，存放在独立的逻辑目录下
type Product struct {
	gorm.Model
	Name        string `gorm:"size:200;not null"`
	Slug        string `gorm:"size:200;uniqueIndex;not null"`
	CategoryID  uint
	Category    ProductCategory
	ProductType string `gorm:"size:50;not null"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:500"`
	Image360    string `gorm:"size:500"`
	IsFeatured  bool   `gorm:"default:false"`
	IsActive    bool   `gorm:"default:true"`
}

// BeforeSave 在 slug 缺省时从名称派生
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Slug = deriveSlug(p.Slug, p.Name)
	return nil
}
