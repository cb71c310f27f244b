package log

import "github.com/sirupsen/logrus"

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger that writes info and above to stderr.
func New() Logger {
	return NewWithLevel(logrus.InfoLevel)
}

// NewWithLevel returns a logrus backed Logger at the given level.
func NewWithLevel(level logrus.Level) Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
