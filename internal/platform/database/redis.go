package database

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"github.com/vocab-notebook/vocabulary-backend/internal/platform/config"
)

// RDB 是全局的Redis客户端实例。未启用Redis时保持为nil。
var RDB *redis.Client

// Ctx 是一个全局的上下文，用于Redis操作
var Ctx = context.Background()

// redisHealthy 记录最近一次Redis操作探测到的健康状态
var redisHealthy atomic.Bool

// InitRedis 初始化与Redis数据库的连接。
// Redis在本项目中只服务于可选的查询限流，连接失败不应阻止应用启动。
func InitRedis(cfg config.RedisConfig) error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		redisHealthy.Store(false)
		return fmt.Errorf("无法连接到Redis: %w", err)
	}

	redisHealthy.Store(true)
	fmt.Println("Redis 连接成功！")
	return nil
}

// IsRedisHealthy 报告Redis当前是否可用
func IsRedisHealthy() bool {
	return RDB != nil && redisHealthy.Load()
}

// SetRedisHealthy 更新Redis健康标记
func SetRedisHealthy(healthy bool) {
	redisHealthy.Store(healthy)
}
