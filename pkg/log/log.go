package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	Logger *zap.Logger
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	config := zap.NewDevelopmentConfig()
	config.Level = level
	config.DisableStacktrace = true

	var err error
	Logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to init default logger: %v", err))
	}
}

// SetDebug toggles debug output of Logger.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zap.DebugLevel)
		return
	}
	level.SetLevel(zap.InfoLevel)
}
