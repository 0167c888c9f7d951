package service

import (
	"errors"

	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound    = errors.New("company info not found")
	ErrCompanyInfoExists  = errors.New("company info already exists")
	ErrHeroPageTaken      = errors.New("hero section already exists for this page")
	ErrHeroNotFound       = errors.New("hero section not found")
	ErrSocialLinkNotFound = errors.New("social link not found")
)

// SiteService 提供全站共享内容：导航栏、页脚公司信息、各页 Hero。
type SiteService struct {
	db *gorm.DB
}

// NewSiteService creates a SiteService instance.
func NewSiteService(gdb *gorm.DB) *SiteService {
	return &SiteService{db: gdb}
}

// Navbar 返回导航栏配置，约定只用第一行；没有时返回 nil。
func (s *SiteService) Navbar() (*db.Navbar, error) {
	var navbar db.Navbar
	err := s.db.Order("id asc").First(&navbar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &navbar, nil
}

// SaveNavbar persists the navbar configuration.
func (s *SiteService) SaveNavbar(navbar *db.Navbar) error {
	return s.db.Save(navbar).Error
}

// Company 返回页脚公司信息（含社媒链接），约定只用第一行；没有时返回 nil。
func (s *SiteService) Company() (*db.CompanyInfo, error) {
	var company db.CompanyInfo
	err := s.db.Preload("SocialLinks").Order("id asc").First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

// CreateCompany persists company info.
// 后台强制单例：已存在一行时继续创建会被拒绝。
func (s *SiteService) CreateCompany(company *db.CompanyInfo) error {
	var count int64
	if err := s.db.Model(&db.CompanyInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCompanyInfoExists
	}
	return s.db.Create(company).Error
}

// UpdateCompany applies updates to the existing company info row.
// 先确认行存在：Save 对不存在的主键会退化为插入，从而绕过单例约束。
func (s *SiteService) UpdateCompany(company *db.CompanyInfo) error {
	if company.ID == 0 {
		return ErrCompanyNotFound
	}

	var existing db.CompanyInfo
	if err := s.db.First(&existing, company.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}

	company.CreatedAt = existing.CreatedAt
	return s.db.Save(company).Error
}

// AddSocialLink attaches a social media link to the company.
func (s *SiteService) AddSocialLink(link *db.SocialMedia) error {
	return s.db.Create(link).Error
}

// DeleteSocialLink removes a social media link.
func (s *SiteService) DeleteSocialLink(id uint) error {
	result := s.db.Delete(&db.SocialMedia{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSocialLinkNotFound
	}
	return nil
}

// HeroSections 返回全部 Hero，按页面取值建索引。
func (s *SiteService) HeroSections() (map[string]db.HeroSection, error) {
	var heroes []db.HeroSection
	if err := s.db.Find(&heroes).Error; err != nil {
		return nil, err
	}

	byPage := make(map[string]db.HeroSection, len(heroes))
	for _, hero := range heroes {
		byPage[hero.Page] = hero
	}
	return byPage, nil
}

// HeroForPage fetches the hero section of one page; nil when absent.
func (s *SiteService) HeroForPage(page string) (*db.HeroSection, error) {
	var hero db.HeroSection
	err := s.db.Where("page = ?", page).First(&hero).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hero, nil
}

// CreateHero persists a hero section; one per page.
func (s *SiteService) CreateHero(hero *db.HeroSection) error {
	if err := s.db.Create(hero).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrHeroPageTaken
		}
		return err
	}
	return nil
}

// UpdateHero applies updates to an existing hero section.
// 先确认行存在，避免对已删除的 id 执行 Save 时退化为插入。
func (s *SiteService) UpdateHero(hero *db.HeroSection) error {
	if hero.ID == 0 {
		return ErrHeroNotFound
	}

	var existing db.HeroSection
	if err := s.db.First(&existing, hero.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHeroNotFound
		}
		return err
	}

	hero.CreatedAt = existing.CreatedAt
	if err := s.db.Save(hero).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrHeroPageTaken
		}
		return err
	}
	return nil
}

// DeleteHero removes a hero section.
func (s *SiteService) DeleteHero(id uint) error {
	result := s.db.Delete(&db.HeroSection{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHeroNotFound
	}
	return nil
}
