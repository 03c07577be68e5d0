// Package logger provides the application-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards output until Init is called, so
// packages can log freely from tests.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the global logger to write to the file at path.
//
// The terminal belongs to the game screen, so logs never go to stdout.
// LOG_LEVEL selects the level (default "info") and LOG_FORMAT=json switches
// to the JSON formatter. The returned function closes the log file.
func Init(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	l := logrus.New()
	Configure(l, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	l.SetOutput(f)
	Log = l

	return f.Close, nil
}

// Configure applies a level and format to l. Unknown levels fall back to info.
func Configure(l *logrus.Logger, level, format string) {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}
}
