package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/service"
)

// Subscribe 处理订阅表单，仅接受同站 XHR 提交。
func (a *API) Subscribe(c *gin.Context) {
	if !isXHR(c) {
		respondGeneralError(c, http.StatusBadRequest, "Invalid request method")
		return
	}

	if err := a.newsletter.Subscribe(c.PostForm("email")); err != nil {
		a.respondIntakeError(c, err, "newsletter subscribe")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitContact 处理合作意向表单，仅接受同站 XHR 提交。
// 持久化失败只返回通用文案，原始错误留在服务端日志里。
func (a *API) SubmitContact(c *gin.Context) {
	if !isXHR(c) {
		respondGeneralError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	input := service.PartnershipInput{
		Name:             c.PostForm("name"),
		Email:            c.PostForm("email"),
		Position:         c.PostForm("position"),
		Phone:            c.PostForm("phone"),
		BusinessName:     c.PostForm("business_name"),
		BusinessType:     c.PostForm("business_type"),
		BusinessLocation: c.PostForm("business_location"),
		Interest:         c.PostForm("interest"),
		Message:          c.PostForm("message"),
	}

	if _, err := a.partnerships.Submit(input); err != nil {
		a.respondIntakeError(c, err, "partnership submit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your submission!"})
}

// BookDemo 处理预约演示表单：落库、挂接排期链接，然后重定向到外部排期页。
func (a *API) BookDemo(c *gin.Context) {
	input := service.DemoBookingInput{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Phone: c.PostForm("phone"),
	}

	booking, err := a.bookings.Book(input)
	if err != nil {
		a.respondIntakeError(c, err, "demo booking")
		return
	}

	c.Redirect(http.StatusFound, *booking.SchedulerURL)
}
