package service

import (
	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

// DemoBookingInput 对应预约演示表单的字段。
type DemoBookingInput struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Phone string `form:"phone" validate:"required"`
}

// DemoBookingService 处理演示预约：创建记录后立即挂上外部排期链接。
// 排期链接是固定配置，不与外部系统做实时核验。
type DemoBookingService struct {
	db           *gorm.DB
	schedulerURL string
}

// NewDemoBookingService creates a DemoBookingService instance.
func NewDemoBookingService(gdb *gorm.DB, schedulerURL string) *DemoBookingService {
	return &DemoBookingService{db: gdb, schedulerURL: schedulerURL}
}

// SchedulerURL 返回外部排期链接。
func (s *DemoBookingService) SchedulerURL() string {
	return s.schedulerURL
}

// Book 校验表单并完成两步写入：先落库（待确认），再回填排期链接（已确认）。
func (s *DemoBookingService) Book(input DemoBookingInput) (*db.DemoBooking, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	booking := db.DemoBooking{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}

	url := s.schedulerURL
	booking.SchedulerURL = &url
	if err := s.db.Model(&booking).Update("scheduler_url", url).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// ListBookings returns demo bookings for the admin surface, newest first.
func (s *DemoBookingService) ListBookings() ([]db.DemoBooking, error) {
	var bookings []db.DemoBooking
	if err := s.db.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
