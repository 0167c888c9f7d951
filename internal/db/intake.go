package db

import "gorm.io/gorm"

// NewsletterSubscriber 保存订阅邮箱，建表后仅由公开表单写入。
// CreatedAt 即订阅时间。
type NewsletterSubscriber struct {
	gorm.Model
	Email string `gorm:"size:255;uniqueIndex;not null"`
}

// PartnershipRequest 保存合作意向表单，创建后不可修改，仅供后台审阅。
type PartnershipRequest struct {
	gorm.Model
	Name             string `gorm:"size:100;not null"`
	Email            string `gorm:"size:255;not null"`
	Position         string `gorm:"size:100"`
	Phone            string `gorm:"size:20;not null"`
	BusinessName     string `gorm:"size:100;not null"`
	BusinessType     string `gorm:"size:100;not null"`
	BusinessLocation string `gorm:"size:100"`
	Interest         string `gorm:"size:200;not null"`
	Message          string `gorm:"type:text"`
}

// DemoBooking 保存演示预约。SchedulerURL 为空表示待确认，
// 预约流程在创建后回填外部排期链接即进入已确认状态。
type DemoBooking struct {
	gorm.Model
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:20;not null"`
	SchedulerURL *string `gorm:"size:255"`
}

// Confirmed 返回预约是否已挂上外部排期链接
func (b DemoBooking) Confirmed() bool {
	return b.SchedulerURL != nil && *b.SchedulerURL != ""
}
