package shutdown

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// httpTimeout 是等待在途请求完成的最长时间
const httpTimeout = 15 * time.Second

// ListenForSignalsAndShutdown 阻塞等待停机信号，然后优雅关闭HTTP服务器。
// 所有状态都在SQLite中同步落盘，服务器关闭后没有额外的收尾工作。
func ListenForSignalsAndShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n收到关闭信号，开始优雅停机...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("服务器关闭错误: %v\n", err)
	} else {
		fmt.Println("服务器已关闭。")
	}

	fmt.Println("优雅停机完成。")
}
