package user

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vocab-notebook/vocabulary-backend/pkg/apperr"
)

// Handler 暴露用户相关的HTTP接口
type Handler struct {
	service *Service
}

// NewHandler 构造用户处理器
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CoerceUserID 把JSON里的userId转换为数据库ID。
// 前端有的地方发数字、有的地方发字符串，两种都接受。
func CoerceUserID(v any) (uint, bool) {
	switch id := v.(type) {
	case float64:
		if id < 0 || id != float64(uint(id)) {
			return 0, false
		}
		return uint(id), true
	case string:
		parsed, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(parsed), true
	default:
		return 0, false
	}
}

// fail 把服务层错误转换为HTTP响应
func fail(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register 注册新账号
// POST /api/auth/register {username, password}
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户名和密码不能为空"})
		return
	}

	profile, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Login 登录
// POST /api/auth/login {username, password}
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户名和密码不能为空"})
		return
	}

	profile, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type verifyRequest struct {
	UserID any `json:"userId"`
}

// Verify 按用户ID恢复登录态
// POST /api/auth/verify {userId}
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID不能为空"})
		return
	}

	userID, ok := CoerceUserID(req.UserID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	profile, err := h.service.Verify(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type dailyTasksRequest struct {
	UserID any             `json:"userId"`
	Tasks  DailyTaskUpdate `json:"tasks"`
}

// UpdateDailyTasks 部分更新今日任务
// POST /api/auth/update-daily-tasks {userId, tasks:{...}}
func (h *Handler) UpdateDailyTasks(c *gin.Context) {
	var req dailyTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	userID, ok := CoerceUserID(req.UserID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户ID格式错误"})
		return
	}

	if err := h.service.UpdateDailyTasks(userID, req.Tasks); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "今日任务更新成功"})
}
