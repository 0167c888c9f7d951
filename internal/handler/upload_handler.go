package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rearmsite/internal/storage"
)

// UploadMedia 处理编辑器的媒体上传。
// 文件名由时间戳与 uuid 组成避免碰撞，落盘位置交给已解析的存储后端，
// 与实体媒体走同一条存储策略。
func (a *API) UploadMedia(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102_150405"), uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}
	defer src.Close()

	location, err := a.media.Save(c.Request.Context(), storage.FolderUploads, filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrMediaUnbound) {
			a.logger.Error().Err(err).Msg("media upload rejected, storage unbound")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media storage is not available"})
			return
		}
		a.logger.Error().Err(err).Msg("media upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": location})
}
