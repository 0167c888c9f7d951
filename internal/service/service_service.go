package service

import (
	"errors"
	"strings"

	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceService wraps service catalog database operations.
type ServiceService struct {
	db *gorm.DB
}

// ServiceInput represents fields accepted when creating or updating a service.
type ServiceInput struct {
	Title            string
	Slug             string
	ShortDescription string
	Content          string
	Image            string
	IsFeatured       bool
}

// NewServiceService creates a ServiceService instance.
func NewServiceService(gdb *gorm.DB) *ServiceService {
	return &ServiceService{db: gdb}
}

// ListFeatured returns featured services up to limit; limit 0 means all.
func (s *ServiceService) ListFeatured(limit int) ([]db.Service, error) {
	query := s.db.Where("is_featured = ?", true).Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var services []db.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// GetBySlug fetches a service by slug.
func (s *ServiceService) GetBySlug(slug string) (*db.Service, error) {
	var svc db.Service
	if err := s.db.Where("slug = ?", slug).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// ListAll returns every service for the admin surface.
func (s *ServiceService) ListAll() ([]db.Service, error) {
	var services []db.Service
	if err := s.db.Order("created_at desc").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Create persists a service.
func (s *ServiceService) Create(input ServiceInput) (*db.Service, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	svc := db.Service{
		Title:            strings.TrimSpace(input.Title),
		Slug:             strings.TrimSpace(input.Slug),
		ShortDescription: input.ShortDescription,
		Content:          input.Content,
		Image:            strings.TrimSpace(input.Image),
		IsFeatured:       input.IsFeatured,
	}
	if err := s.db.Create(&svc).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return &svc, nil
}

// Update applies updates to an existing service. The slug is never overwritten.
func (s *ServiceService) Update(id uint, input ServiceInput) (*db.Service, error) {
	var existing db.Service
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.ShortDescription = input.ShortDescription
	existing.Content = input.Content
	existing.Image = strings.TrimSpace(input.Image)
	existing.IsFeatured = input.IsFeatured

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete removes a service.
func (s *ServiceService) Delete(id uint) error {
	result := s.db.Delete(&db.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
