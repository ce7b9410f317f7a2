package word

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vocab-notebook/vocabulary-backend/internal/user"
	"github.com/vocab-notebook/vocabulary-backend/pkg/apperr"
)

// Handler 暴露单词本相关的HTTP接口
type Handler struct {
	service *Service
}

// NewHandler 构造单词处理器
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// fail 把服务层错误转换为HTTP响应
func fail(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
}

// queryUserID 解析可选的userId查询参数。
// 返回(nil, true)表示未提供，(nil, false)表示格式错误。
func queryUserID(c *gin.Context) (*uint, bool) {
	raw := c.Query("userId")
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	id := uint(parsed)
	return &id, true
}

// requireQueryUserID 解析必填的userId查询参数
func requireQueryUserID(c *gin.Context) (uint, bool) {
	raw := c.Query("userId")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
		return 0, false
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return 0, false
	}
	return uint(parsed), true
}

// GetWords 获取单词文本列表
// GET /api/words?userId=
func (h *Handler) GetWords(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	words, err := h.service.Words(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, words)
}

// GetWordsFull 获取完整条目列表
// GET /api/words/full?userId=
func (h *Handler) GetWordsFull(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	entries, err := h.service.Entries(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

type addWordRequest struct {
	UserID  any    `json:"userId"`
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// AddWord 添加单词
// POST /api/words {userId, word, meaning?}
func (h *Handler) AddWord(c *gin.Context) {
	var req addWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if req.UserID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
		return
	}
	userID, ok := user.CoerceUserID(req.UserID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	if _, err := h.service.Add(userID, req.Word, req.Meaning); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "单词添加成功！"})
}

// DeleteWord 按位置索引删除单词（兼容接口）。
// 索引基于请求时刻的列表，与其他请求并发时可能命中相邻条目，
// 稳定的删除方式是 DELETE /api/entries/:id。
// DELETE /api/words/:index?userId=
func (h *Handler) DeleteWord(c *gin.Context) {
	userID, ok := requireQueryUserID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的索引！"})
		return
	}

	if err := h.service.DeleteByIndex(userID, index); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "单词删除成功！"})
}

// RememberWord 按位置索引增加记住次数（兼容接口）
// POST /api/words/remember/:index?userId=
func (h *Handler) RememberWord(c *gin.Context) {
	userID, ok := requireQueryUserID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的索引！"})
		return
	}

	if err := h.service.RememberByIndex(userID, index); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "单词记住次数已更新！"})
}

// entryID 解析路径中的条目ID
func entryID(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "条目ID格式错误"})
		return 0, false
	}
	return uint(parsed), true
}

// DeleteEntry 按条目ID删除单词
// DELETE /api/entries/:id?userId=
func (h *Handler) DeleteEntry(c *gin.Context) {
	userID, ok := requireQueryUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(userID, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "单词删除成功！"})
}

// RememberEntry 按条目ID增加记住次数
// POST /api/entries/:id/remember?userId=
func (h *Handler) RememberEntry(c *gin.Context) {
	userID, ok := requireQueryUserID(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.service.RememberByID(userID, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "单词记住次数已更新！"})
}

// GetStats 获取学习统计
// GET /api/words/stats?userId=
func (h *Handler) GetStats(c *gin.Context) {
	userID, ok := requireQueryUserID(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
