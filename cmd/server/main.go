package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vocab-notebook/vocabulary-backend/api"
	"github.com/vocab-notebook/vocabulary-backend/internal/example"
	"github.com/vocab-notebook/vocabulary-backend/internal/platform/config"
	"github.com/vocab-notebook/vocabulary-backend/internal/platform/database"
	"github.com/vocab-notebook/vocabulary-backend/internal/platform/logger"
	"github.com/vocab-notebook/vocabulary-backend/internal/platform/shutdown"
	"github.com/vocab-notebook/vocabulary-backend/internal/platform/startup"
	"github.com/vocab-notebook/vocabulary-backend/internal/user"
	"github.com/vocab-notebook/vocabulary-backend/internal/word"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("加载配置失败: %v", err))
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		panic(fmt.Sprintf("初始化日志失败: %v", err))
	}
	defer log.Sync()

	if err := database.InitDB(cfg.Database.Sqlite); err != nil {
		log.Fatal("初始化数据库失败", zap.Error(err))
	}

	// Redis只服务于可选的例句查询限流，连不上不阻止启动
	if cfg.Database.Redis.Address != "" {
		if err := database.InitRedis(cfg.Database.Redis); err != nil {
			log.Warn("Redis不可用，例句查询限流被禁用", zap.Error(err))
		}
	}

	// 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		log.Fatal("应用初始化失败，无法启动", zap.Error(err))
	}

	// 组装各模块
	userRepo := user.NewRepository(database.DB)
	userService := user.NewService(userRepo, cfg.Uploads.AvatarDir, log)
	userHandler := user.NewHandler(userService)

	wordRepo := word.NewRepository(database.DB)
	wordService := word.NewService(wordRepo, userRepo, cfg.Server.AllowGlobalWordList, log)
	wordHandler := word.NewHandler(wordService)

	dictionary := example.NewBuiltinDictionary()
	log.Info("内置例句词典加载完成", zap.Int("words", dictionary.Size()))
	remote := example.NewRemoteClient(cfg.Dictionary.RemoteBaseURL, nil)
	resolver := example.NewResolver(dictionary, remote, log)
	limiter := example.NewLookupLimiter(cfg.Examples.MaxPerMinute, log)
	exampleHandler := example.NewHandler(resolver, limiter)

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r, api.Handlers{
		User:    userHandler,
		Word:    wordHandler,
		Example: exampleHandler,
	})

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	shutdown.ListenForSignalsAndShutdown(server)
}
