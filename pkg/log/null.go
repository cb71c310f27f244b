package log

// nullLogger discards everything.
type nullLogger struct{}

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return nullLogger{}
}
