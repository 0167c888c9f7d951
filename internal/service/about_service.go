package service

import (
	"errors"

	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

var (
	ErrAboutNotFound      = errors.New("about section not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrLeadershipNotFound = errors.New("leadership member not found")
)

// AboutService 提供关于页内容：快照、管理层与团队成员。
type AboutService struct {
	db *gorm.DB
}

// NewAboutService creates an AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// ActiveSnapshot 返回最新的启用版关于页快照。
// 约定上同一时间只有一份启用快照，读取时以最新 id 兜底。
func (s *AboutService) ActiveSnapshot() (*db.AboutSection, error) {
	var about db.AboutSection
	err := s.db.Where("is_active = ?", true).Order("id desc").First(&about).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, err
	}
	return &about, nil
}

// ListLeadership returns leadership members by display order.
func (s *AboutService) ListLeadership() ([]db.Leadership, error) {
	var members []db.Leadership
	if err := s.db.Order("display_order asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CEOMessage 返回第一位标记为 CEO 的成员，没有时返回 nil。
func (s *AboutService) CEOMessage() (*db.Leadership, error) {
	var ceo db.Leadership
	err := s.db.Where("is_ceo = ?", true).Order("display_order asc").First(&ceo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ceo, nil
}

// ListTeamForAbout returns active members flagged for the about page, by sort order.
func (s *AboutService) ListTeamForAbout() ([]db.TeamMember, error) {
	var members []db.TeamMember
	err := s.db.Where("is_active = ? AND show_on_about = ?", true, true).
		Order("sort_order asc").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListAllTeam returns every team member for the admin surface.
func (s *AboutService) ListAllTeam() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Order("sort_order asc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// SaveSnapshot persists a new or edited about page snapshot.
func (s *AboutService) SaveSnapshot(about *db.AboutSection) error {
	return s.db.Save(about).Error
}

// SaveTeamMember persists a new or edited team member.
func (s *AboutService) SaveTeamMember(member *db.TeamMember) error {
	return s.db.Save(member).Error
}

// DeleteTeamMember removes a team member.
func (s *AboutService) DeleteTeamMember(id uint) error {
	result := s.db.Delete(&db.TeamMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

// SaveLeadership persists a new or edited leadership member.
func (s *AboutService) SaveLeadership(member *db.Leadership) error {
	return s.db.Save(member).Error
}

// DeleteLeadership removes a leadership member.
func (s *AboutService) DeleteLeadership(id uint) error {
	result := s.db.Delete(&db.Leadership{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeadershipNotFound
	}
	return nil
}
