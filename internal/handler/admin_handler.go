package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// Login 处理后台登录请求。
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		respondGeneralError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		respondGeneralError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondGeneralError(c, http.StatusInternalServerError, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout 清理会话。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AuthRequired 是一个简单的认证中间件。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			respondGeneralError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Dashboard 返回后台概览统计。
func (a *API) Dashboard(c *gin.Context) {
	counts := gin.H{}
	models := map[string]interface{}{
		"posts":        &db.Post{},
		"services":     &db.Service{},
		"products":     &db.Product{},
		"subscribers":  &db.NewsletterSubscriber{},
		"partnerships": &db.PartnershipRequest{},
		"bookings":     &db.DemoBooking{},
	}
	for name, model := range models {
		var count int64
		if err := a.db.Model(model).Count(&count).Error; err != nil {
			a.renderFailure(c, "count "+name, err)
			return
		}
		counts[name] = count
	}

	session := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{
		"username": session.Get("username"),
		"counts":   counts,
	})
}
