package logger

import (
	"os"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init builds the global logger. Production gets JSON output, everything
// else the human-readable development encoder.
func Init() {
	var l *zap.Logger
	var err error
	if os.Getenv("ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	log = l.Sugar()
}

// L returns the global sugared logger.
func L() *zap.SugaredLogger {
	if log == nil {
		Init()
	}
	return log
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
