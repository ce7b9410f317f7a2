package example

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vocab-notebook/vocabulary-backend/internal/platform/database"
	"go.uber.org/zap"
)

const (
	// lookupKeyPrefix 是Redis中记录每个IP查询时刻的有序集合的键名前缀
	lookupKeyPrefix = "example_lookups:"
	// lookupWindow 是滑动窗口的长度
	lookupWindow = time.Minute
	// lookupTTL 比窗口稍长，保证冷IP的键能自动过期
	lookupTTL = 2 * time.Minute
)

// LookupLimiter 用Redis滑动窗口限制单个IP的例句查询频率。
// Redis未配置或不可用时直接放行。
type LookupLimiter struct {
	maxPerMinute int
	logger       *zap.Logger
}

// NewLookupLimiter 构造限流器。maxPerMinute<=0表示不限流。
func NewLookupLimiter(maxPerMinute int, logger *zap.Logger) *LookupLimiter {
	return &LookupLimiter{maxPerMinute: maxPerMinute, logger: logger}
}

// Allow 记录一次查询并报告该IP在窗口内是否仍在配额内。
func (l *LookupLimiter) Allow(ip string) bool {
	if l.maxPerMinute <= 0 || ip == "" {
		return true
	}
	if database.RDB == nil || !database.IsRedisHealthy() {
		return true
	}

	now := time.Now()
	key := lookupKeyPrefix + ip
	minScore := fmt.Sprintf("(%d", now.Add(-lookupWindow).UnixMicro())

	// 事务内完成：清理窗口外的记录、写入本次、刷新过期、取总数
	pipe := database.RDB.TxPipeline()
	pipe.ZRemRangeByScore(database.Ctx, key, "-inf", minScore)
	pipe.ZAdd(database.Ctx, key, redis.Z{
		Score:  float64(now.UnixMicro()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(database.Ctx, key, lookupTTL)
	countCmd := pipe.ZCard(database.Ctx, key)

	if _, err := pipe.Exec(database.Ctx); err != nil {
		l.logger.Warn("例句查询限流计数失败，放行请求", zap.String("ip", ip), zap.Error(err))
		return true
	}
	return countCmd.Val() <= int64(l.maxPerMinute)
}
