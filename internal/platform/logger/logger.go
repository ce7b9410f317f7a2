package logger

import "go.uber.org/zap"

// New 按运行模式构造zap日志器。
// debug模式用开发配置（彩色、人类可读），其余模式用生产配置（JSON）。
func New(mode string) (*zap.Logger, error) {
	if mode == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
