package log

// nullLogger discards everything logged through it.
type nullLogger struct{}

func (n nullLogger) Infof(format string, args ...interface{})  {}
func (n nullLogger) Errorf(format string, args ...interface{}) {}
func (n nullLogger) Debugf(format string, args ...interface{}) {}

// NewNullLogger returns a Logger that discards all output.
func NewNullLogger() Logger {
	return nullLogger{}
}
