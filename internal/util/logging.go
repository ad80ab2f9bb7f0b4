// Package util provides common utilities including logging helpers and
// file system path resolution.
package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogging routes log output to the file at path. The TUI owns
// stdout, so logs never go to the terminal; if the file cannot be
// opened, logging is silenced rather than corrupting the display.
func InitLogging(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return err
	}
	logrus.SetOutput(f)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// SetVerbose raises the log level to debug.
func SetVerbose() {
	logrus.SetLevel(logrus.DebugLevel)
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		logrus.WithError(err).Error(context)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		logrus.WithError(err).Fatal(context)
	}
}
