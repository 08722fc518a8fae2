package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pantryplan/backend/config"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// Init initializes the global logger. Production gets JSON output,
// everything else the human-readable development encoder.
func Init() {
	once.Do(func() {
		var err error
		if config.IsProduction() {
			logger, err = zap.NewProduction()
		} else {
			logger, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
}

// L returns the global logger instance
func L() *zap.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

// Sync flushes any buffered log entries
func Sync() {
	_ = L().Sync()
}

func Info(msg string, fields ...zapcore.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}

func Fatal(msg string, fields ...zapcore.Field) {
	L().Fatal(msg, fields...)
}
