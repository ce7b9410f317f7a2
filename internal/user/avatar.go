package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UploadAvatar 上传头像文件
// POST /api/auth/avatar (multipart: avatar + userId)
func (h *Handler) UploadAvatar(c *gin.Context) {
	userIDStr := c.PostForm("userId")
	userID, ok := CoerceUserID(userIDStr)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "文件不能为空"})
		return
	}

	filename, err := h.service.SaveAvatar(userID, file)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatarUrl": filename,
		"message":   "头像上传成功",
	})
}

type randomAvatarRequest struct {
	UserID    any    `json:"userId"`
	AvatarURL string `json:"avatarUrl"`
}

// SetRandomAvatar 把头像设置为DiceBear生成的URL
// POST /api/auth/random-avatar {userId, avatarUrl}
func (h *Handler) SetRandomAvatar(c *gin.Context) {
	var req randomAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil || req.AvatarURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID和头像URL不能为空"})
		return
	}

	userID, ok := CoerceUserID(req.UserID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	if err := h.service.SetRandomAvatar(userID, req.AvatarURL); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatarUrl": req.AvatarURL,
		"message":   "随机头像设置成功",
	})
}

// GetAvatar 按文件名返回存储的头像内容
// GET /api/auth/avatar/:filename
func (h *Handler) GetAvatar(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.service.AvatarFilePath(filename)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", avatarContentType(filename))
	c.File(path)
}

// avatarContentType 按扩展名猜测内容类型，默认jpeg
func avatarContentType(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
