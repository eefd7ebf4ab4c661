// Package logging owns the shared process logger. Components take a
// *log.Logger through their options; anything not given one falls back to
// the default built here, and the CLI steers its level through SetLevel.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultOnce sync.Once
	defaultLog  *log.Logger
)

// New returns a stderr logger at the named level. Unrecognized names fall
// back to info rather than erroring, so a bad log_level config value still
// produces a usable logger.
func New(level string) *log.Logger {
	logger := log.New(os.Stderr)
	logger.SetLevel(parseLevel(level))
	return logger
}

// Default returns the shared logger. The first call builds it at info level.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLog = New("info")
	})
	return defaultLog
}

// SetLevel adjusts the shared logger's level, from --debug or the log_level
// config field.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
