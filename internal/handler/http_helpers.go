package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rearmsite/internal/service"
)

// isXHR 判断请求是否来自同站 XHR，非安全级别的轻量门槛。
func isXHR(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

func respondFieldErrors(c *gin.Context, status int, fields map[string][]string) {
	c.JSON(status, gin.H{"success": false, "errors": fields})
}

func respondGeneralError(c *gin.Context, status int, message string) {
	respondFieldErrors(c, status, map[string][]string{"general": {message}})
}

// respondIntakeError 将意向表单的错误映射为响应：
// 校验错误转为字段级 400，其余一律 500 且不外泄内部细节。
func (a *API) respondIntakeError(c *gin.Context, err error, operation string) {
	if verr, ok := service.AsValidationError(err); ok {
		respondFieldErrors(c, http.StatusBadRequest, verr.Fields)
		return
	}

	a.logger.Error().Err(err).Str("operation", operation).Msg("intake request failed")
	respondGeneralError(c, http.StatusInternalServerError, "An error occurred. Please try again later.")
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
