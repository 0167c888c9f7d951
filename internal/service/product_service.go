package service

import (
	"errors"
	"strings"

	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrProductCategoryNotFound = errors.New("product category not found")
	ErrProductCategoryInUse    = errors.New("product category still has products")
	ErrProductTypeInvalid      = errors.New("product type is invalid")
)

// ProductService wraps product and product category database operations.
type ProductService struct {
	db *gorm.DB
}

// ProductGroups 按产品类型拆分的产品列表
type ProductGroups struct {
	Processed []db.Product
	Raw       []db.Product
}

// ProductInput represents fields accepted when creating or updating a product.
type ProductInput struct {
	Name        string
	Slug        string
	CategoryID  uint
	ProductType string
	Description string
	Image       string
	Image360    string
	IsFeatured  bool
	IsActive    bool
}

// NewProductService creates a ProductService instance.
func NewProductService(gdb *gorm.DB) *ProductService {
	return &ProductService{db: gdb}
}

// ListActiveGrouped returns active products split by type with categories preloaded.
func (s *ProductService) ListActiveGrouped() (ProductGroups, error) {
	var groups ProductGroups

	base := func(productType string) *gorm.DB {
		return s.db.Preload("Category").
			Where("product_type = ? AND is_active = ?", productType, true).
			Order("created_at desc")
	}

	if err := base(db.ProductTypeProcessed).Find(&groups.Processed).Error; err != nil {
		return groups, err
	}
	if err := base(db.ProductTypeRaw).Find(&groups.Raw).Error; err != nil {
		return groups, err
	}

	return groups, nil
}

// Featured returns the newest featured active products up to limit.
func (s *ProductService) Featured(limit int) ([]db.Product, error) {
	var products []db.Product
	err := s.db.Preload("Category").
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("created_at desc").Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetActiveBySlug fetches an active product by slug.
func (s *ProductService) GetActiveBySlug(slug string) (*db.Product, error) {
	var product db.Product
	err := s.db.Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Related returns up to limit active products from the same category, excluding the product itself.
func (s *ProductService) Related(product *db.Product, limit int) ([]db.Product, error) {
	var related []db.Product
	err := s.db.Preload("Category").
		Where("category_id = ? AND is_active = ? AND id <> ?", product.CategoryID, true, product.ID).
		Order("created_at desc").Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

// ListAll returns every product for the admin surface.
func (s *ProductService) ListAll() ([]db.Product, error) {
	var products []db.Product
	if err := s.db.Preload("Category").Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create persists a product.
func (s *ProductService) Create(input ProductInput) (*db.Product, error) {
	if !isValidProductType(input.ProductType) {
		return nil, ErrProductTypeInvalid
	}

	var category db.ProductCategory
	if err := s.db.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductCategoryNotFound
		}
		return nil, err
	}

	product := db.Product{
		Name:        strings.TrimSpace(input.Name),
		Slug:        strings.TrimSpace(input.Slug),
		CategoryID:  category.ID,
		ProductType: input.ProductType,
		Description: input.Description,
		Image:       strings.TrimSpace(input.Image),
		Image360:    strings.TrimSpace(input.Image360),
		IsFeatured:  input.IsFeatured,
		IsActive:    input.IsActive,
	}
	if err := s.db.Create(&product).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &product, nil
}

// Update applies updates to an existing product. The slug is never overwritten.
func (s *ProductService) Update(id uint, input ProductInput) (*db.Product, error) {
	var existing db.Product
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if !isValidProductType(input.ProductType) {
		return nil, ErrProductTypeInvalid
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.CategoryID = input.CategoryID
	existing.ProductType = input.ProductType
	existing.Description = input.Description
	existing.Image = strings.TrimSpace(input.Image)
	existing.Image360 = strings.TrimSpace(input.Image360)
	existing.IsFeatured = input.IsFeatured
	existing.IsActive = input.IsActive

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	result := s.db.Delete(&db.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ListCategories returns product categories ordered by name.
func (s *ProductService) ListCategories() ([]db.ProductCategory, error) {
	var categories []db.ProductCategory
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory persists a product category.
func (s *ProductService) CreateCategory(name, slug string) (*db.ProductCategory, error) {
	category := db.ProductCategory{Name: strings.TrimSpace(name), Slug: strings.TrimSpace(slug)}
	if err := s.db.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a product category.
// 仍有产品引用该分类时删除被拒绝，不做级联。
func (s *ProductService) DeleteCategory(id uint) error {
	var category db.ProductCategory
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductCategoryNotFound
		}
		return err
	}

	var count int64
	if err := s.db.Model(&db.Product{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrProductCategoryInUse
	}

	return s.db.Delete(&category).Error
}

func isValidProductType(productType string) bool {
	return productType == db.ProductTypeProcessed || productType == db.ProductTypeRaw
}
