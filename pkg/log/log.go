// Package log defines the logging interface used across the emulator,
// backed by logrus so host programs can plug in their own formatter or
// output sink via the standard logrus API.
package log

import "github.com/sirupsen/logrus"

// Logger is the minimal surface every component logs through.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger backed by a fresh logrus.Logger with text output
// to stderr at Info level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return &logger{l}
}

// NewWithLogrus wraps an existing *logrus.Logger, so a host program can
// configure formatting, output, and hooks before handing it over.
func NewWithLogrus(l *logrus.Logger) Logger {
	return &logger{l}
}
