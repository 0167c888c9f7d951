package service

import (
	"errors"
	"strings"

	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTitleRequired    = errors.New("post title is required")
	ErrSlugTaken        = errors.New("slug is already taken")
)

// PostService wraps blog post and category database operations.
type PostService struct {
	db *gorm.DB
}

// PostFilter describes filters for listing published posts.
type PostFilter struct {
	CategoryID uint
	Page       int
	PerPage    int
}

// PostListResult aggregates paginated list data.
type PostListResult struct {
	Posts      []db.Post
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title         string
	Slug          string
	Content       string
	FeaturedImage string
	IsPublished   bool
	AuthorID      uint
	CategoryIDs   []uint
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// ListPublished returns published posts ordered by creation time descending.
func (s *PostService) ListPublished(filter PostFilter) (PostListResult, error) {
	result := PostListResult{
		Page:    normalizePage(filter.Page),
		PerPage: normalizePerPage(filter.PerPage, 9),
	}

	query := s.db.Model(&db.Post{}).Where("is_published = ?", true)
	if filter.CategoryID != 0 {
		query = query.
			Joins("JOIN post_categories ON post_categories.post_id = posts.id").
			Where("post_categories.category_id = ?", filter.CategoryID)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}
	result.TotalPages = totalPages(result.Total, result.PerPage)

	offset := (result.Page - 1) * result.PerPage
	if err := query.
		Preload("Categories").Preload("Author").
		Order("created_at desc").
		Offset(offset).Limit(result.PerPage).
		Find(&result.Posts).Error; err != nil {
		return result, err
	}

	return result, nil
}

// AllPublished 返回全部已发布文章，首页完整列表不分页。
func (s *PostService) AllPublished() ([]db.Post, error) {
	var posts []db.Post
	err := s.db.Where("is_published = ?", true).
		Preload("Categories").Preload("Author").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Recent returns the latest published posts, optionally excluding one post.
func (s *PostService) Recent(limit int, excludeID uint) ([]db.Post, error) {
	query := s.db.Where("is_published = ?", true).Order("created_at desc").Limit(limit)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var posts []db.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublishedBySlug fetches a published post by slug with categories preloaded.
func (s *PostService) GetPublishedBySlug(slug string) (*db.Post, error) {
	var post db.Post
	err := s.db.Preload("Categories").Preload("Author").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListCategories returns all blog categories.
func (s *PostService) ListCategories() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryBySlug fetches a category by slug.
func (s *PostService) GetCategoryBySlug(slug string) (*db.Category, error) {
	var category db.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ListAll returns every post for the admin surface.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Preload("Categories").Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get fetches a post by id.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Categories").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create persists a post and associates categories in a transaction.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	post := db.Post{
		Title:         strings.TrimSpace(input.Title),
		Slug:          strings.TrimSpace(input.Slug),
		Content:       input.Content,
		FeaturedImage: strings.TrimSpace(input.FeaturedImage),
		IsPublished:   input.IsPublished,
		AuthorID:      input.AuthorID,
	}

	return s.saveWithCategories(&post, input.CategoryIDs)
}

// Update applies updates to an existing post. The slug is never overwritten.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	var existing db.Post
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.Content = input.Content
	existing.FeaturedImage = strings.TrimSpace(input.FeaturedImage)
	existing.IsPublished = input.IsPublished

	return s.saveWithCategories(&existing, input.CategoryIDs)
}

// Delete removes a post and its category associations.
func (s *PostService) Delete(id uint) error {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

// CreateCategory persists a blog category.
func (s *PostService) CreateCategory(name, slug string) (*db.Category, error) {
	category := db.Category{Name: strings.TrimSpace(name), Slug: strings.TrimSpace(slug)}
	if category.Name == "" {
		return nil, ErrTitleRequired
	}
	if err := s.db.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a blog category; posts keep existing without it.
func (s *PostService) DeleteCategory(id uint) error {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func (s *PostService) saveWithCategories(post *db.Post, categoryIDs []uint) (*db.Post, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrSlugTaken
			}
			return err
		}

		var categories []db.Category
		if len(categoryIDs) > 0 {
			if err := tx.Find(&categories, categoryIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(post).Association("Categories").Replace(categories)
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}
