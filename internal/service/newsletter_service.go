package service

import (
	"strings"

	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

// NewsletterService 处理订阅表单的写入。
type NewsletterService struct {
	db *gorm.DB
}

// NewNewsletterService creates a NewsletterService instance.
func NewNewsletterService(gdb *gorm.DB) *NewsletterService {
	return &NewsletterService{db: gdb}
}

// Subscribe 以 get-or-create 方式登记订阅邮箱。
// 重复提交按用户错误处理，返回字段级校验错误而不是幂等成功。
func (s *NewsletterService) Subscribe(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" || !strings.Contains(trimmed, "@") {
		return newFieldError("email", "Please enter a valid email address")
	}

	var subscriber db.NewsletterSubscriber
	result := s.db.Where("email = ?", trimmed).
		Attrs(db.NewsletterSubscriber{Email: trimmed}).
		FirstOrCreate(&subscriber)
	if result.Error != nil {
		// 并发竞争双写同一邮箱时，唯一索引拒绝后到的一方
		if isUniqueViolation(result.Error) {
			return newFieldError("email", "This email is already subscribed")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return newFieldError("email", "This email is already subscribed")
	}

	return nil
}

// ListSubscribers returns subscribers for the admin surface, newest first.
func (s *NewsletterService) ListSubscribers() ([]db.NewsletterSubscriber, error) {
	var subscribers []db.NewsletterSubscriber
	if err := s.db.Order("created_at desc").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}
