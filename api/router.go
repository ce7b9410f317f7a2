package api

import (
	"github.com/gin-gonic/gin"
	"github.com/vocab-notebook/vocabulary-backend/internal/example"
	"github.com/vocab-notebook/vocabulary-backend/internal/user"
	"github.com/vocab-notebook/vocabulary-backend/internal/word"
)

// Handlers 汇集各模块的HTTP处理器
type Handlers struct {
	User    *user.Handler
	Word    *word.Handler
	Example *example.Handler
}

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		// 账号相关的路由组 /api/auth
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.User.Register)
			auth.POST("/login", h.User.Login)
			auth.POST("/verify", h.User.Verify)
			auth.POST("/avatar", h.User.UploadAvatar)
			auth.POST("/random-avatar", h.User.SetRandomAvatar)
			auth.GET("/avatar/:filename", h.User.GetAvatar)
			auth.POST("/update-daily-tasks", h.User.UpdateDailyTasks)
		}

		// 单词本相关的路由组 /api/words
		words := api.Group("/words")
		{
			words.GET("", h.Word.GetWords)
			words.GET("/full", h.Word.GetWordsFull)
			words.GET("/stats", h.Word.GetStats)
			words.POST("", h.Word.AddWord)
			// 基于位置索引的兼容接口
			words.DELETE("/:index", h.Word.DeleteWord)
			words.POST("/remember/:index", h.Word.RememberWord)
		}

		// 基于稳定条目ID的路由组 /api/entries
		entries := api.Group("/entries")
		{
			entries.DELETE("/:id", h.Word.DeleteEntry)
			entries.POST("/:id/remember", h.Word.RememberEntry)
		}

		// 例句查询
		api.POST("/examples", h.Example.GetExamples)
	}
}
