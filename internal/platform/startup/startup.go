package startup

import (
	"fmt"

	"github.com/vocab-notebook/vocabulary-backend/internal/user"
	"github.com/vocab-notebook/vocabulary-backend/internal/word"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := user.PrimeDB(); err != nil {
		return err
	}
	if err := word.PrimeDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}
