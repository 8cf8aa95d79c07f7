package log

import (
	"io"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
)

// PkgKey is the field used to tag log lines with the emitting component.
const PkgKey = "pkg"

// Logger abstruct interface for internal logging
type Logger interface {
	Error(msgs ...interface{})
	Warn(msgs ...interface{})
	Info(msgs ...interface{})
	Debug(msgs ...interface{})
	Trace(msgs ...interface{})
	Tracef(s string, msgs ...interface{})
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
}

type logger struct {
	log *logrus.Entry
}

func (l *logger) Warn(msgs ...interface{}) {
	l.log.Warn(msgs...)
}

func (l *logger) Tracef(s string, msgs ...interface{}) {
	l.log.Tracef(s, msgs...)
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return NewLoggerFromEntry(l.log.WithField(key, value))
}

func (l *logger) WithError(err error) Logger {
	return NewLoggerFromEntry(l.log.WithError(err))
}

func (l *logger) Error(msgs ...interface{}) {
	l.log.Error(msgs...)
}

func (l *logger) Info(msgs ...interface{}) {
	l.log.Info(msgs...)
}

func (l *logger) Debug(msgs ...interface{}) {
	l.log.Debug(msgs...)
}

func (l *logger) Trace(msgs ...interface{}) {
	l.log.Trace(msgs...)
}

// NewLogrus builds the process logrus logger. Lines are rendered with the nested
// formatter unless toECS is set.
func NewLogrus(level logrus.Level, toECS bool) *logrus.Logger {
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{PkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if toECS {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	return logrusLogger
}

// NewLogger construct Logger from logrus.Logger
func NewLogger(log *logrus.Logger) Logger {
	return &logger{log: logrus.NewEntry(log)}
}

// NewLoggerFromEntry construct Logger from logrus.Entry
func NewLoggerFromEntry(log *logrus.Entry) Logger {
	return &logger{log: log}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return NewLogger(l)
}
