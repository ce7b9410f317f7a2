package database

import (
	"fmt"
	"log"
	"os"

	"github.com/vocab-notebook/vocabulary-backend/internal/platform/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是全局的GORM数据库句柄，供项目其他部分使用
var DB *gorm.DB

// InitDB 初始化与SQLite数据库的连接
func InitDB(cfg config.SqliteConfig) error {
	// GORM日志配置
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: 0,
			LogLevel:      logger.Silent, // 调试SQL时可以临时改为Info
			Colorful:      true,
		},
	)

	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	fmt.Println("数据库连接成功！")
	return nil
}
