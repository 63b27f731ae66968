package logger

import (
	"go.uber.org/zap"
)

// Log is the shared logger. It defaults to a no-op logger so packages can log
// before Init is called (useful in tests).
var Log *zap.Logger = zap.NewNop()

// Init replaces the no-op logger with a development logger.
func Init() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		// Keep the no-op logger rather than crashing the host
		return
	}
	Log = logger
}
