package word

import (
	"fmt"

	"github.com/vocab-notebook/vocabulary-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("无法迁移items表: %w", err)
	}
	fmt.Println("items数据库表迁移成功。")
	return nil
}

// PrimeDB 是word模块的初始化总入口
func PrimeDB() error {
	if err := migrateDB(); err != nil {
		return err
	}

	var count int64
	if err := database.DB.Model(&Entry{}).Count(&count).Error; err != nil {
		return fmt.Errorf("统计单词数量失败: %w", err)
	}
	fmt.Printf("word模块初始化完成，现有 %d 个单词条目。\n", count)
	return nil
}
