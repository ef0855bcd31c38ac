package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New はレベル指定付きでproduction構成のzapを作る。
func New(logLevel string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level.SetLevel(level)

	return config.Build()
}
