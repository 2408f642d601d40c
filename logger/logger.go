package logger

import (
	"log"

	"go.uber.org/zap"
)

var appLogger *zap.Logger

// Init builds the process-wide structured logger.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger = l
}

// Log returns the shared logger, falling back to a no-op logger so
// packages can log safely in tests without calling Init.
func Log() *zap.Logger {
	if appLogger == nil {
		return zap.NewNop()
	}
	return appLogger
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if appLogger != nil {
		_ = appLogger.Sync()
	}
}
