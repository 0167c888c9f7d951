package service

import (
	"github.com/rearmsite/internal/db"
	"gorm.io/gorm"
)

// PartnershipInput 对应合作意向表单的字段。
// position、business_location、message 为可选项，其余必填。
type PartnershipInput struct {
	Name             string `form:"name" validate:"required"`
	Email            string `form:"email" validate:"required,email"`
	Position         string `form:"position"`
	Phone            string `form:"phone" validate:"required"`
	BusinessName     string `form:"business_name" validate:"required"`
	BusinessType     string `form:"business_type" validate:"required"`
	BusinessLocation string `form:"business_location"`
	Interest         string `form:"interest" validate:"required"`
	Message          string `form:"message"`
}

// PartnershipService 处理合作意向表单的写入，记录创建后不可修改。
type PartnershipService struct {
	db *gorm.DB
}

// NewPartnershipService creates a PartnershipService instance.
func NewPartnershipService(gdb *gorm.DB) *PartnershipService {
	return &PartnershipService{db: gdb}
}

// Submit 校验并无条件落库，不做去重。
func (s *PartnershipService) Submit(input PartnershipInput) (*db.PartnershipRequest, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}

	request := db.PartnershipRequest{
		Name:             input.Name,
		Email:            input.Email,
		Position:         input.Position,
		Phone:            input.Phone,
		BusinessName:     input.BusinessName,
		BusinessType:     input.BusinessType,
		BusinessLocation: input.BusinessLocation,
		Interest:         input.Interest,
		Message:          input.Message,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ListRequests returns partnership requests for the admin surface, newest first.
func (s *PartnershipService) ListRequests() ([]db.PartnershipRequest, error) {
	var requests []db.PartnershipRequest
	if err := s.db.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
