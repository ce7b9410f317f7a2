package example

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler 暴露例句查询的HTTP接口。
type Handler struct {
	resolver *Resolver
	limiter  *LookupLimiter
}

// NewHandler 构造例句处理器。limiter可以为nil，表示不限流。
func NewHandler(resolver *Resolver, limiter *LookupLimiter) *Handler {
	return &Handler{resolver: resolver, limiter: limiter}
}

type examplesRequest struct {
	Word string `json:"word"`
}

// GetExamples 查询一个单词的例句（本地优先，失败时尝试在线词典）。
// POST /api/examples {word} -> {word, examples, hasExamples}
func (h *Handler) GetExamples(c *gin.Context) {
	var req examplesRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "单词不能为空"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后重试"})
		return
	}

	resolution := h.resolver.Resolve(c.Request.Context(), req.Word)

	examples := resolution.Examples
	if examples == nil {
		// 保证序列化为[]而不是null
		examples = []Sentence{}
	}
	c.JSON(http.StatusOK, gin.H{
		"word":        strings.TrimSpace(req.Word),
		"examples":    examples,
		"hasExamples": len(examples) > 0,
	})
}
