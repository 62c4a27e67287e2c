package main

import (
	"github.com/sirupsen/logrus"

	"github.com/pagesaw/pagesaw/observability"
)

// logrusLogger backs the library's Logger interface with logrus.
type logrusLogger struct {
	entry *logrus.Entry
}

func newLogrusLogger(l *logrus.Logger) observability.Logger {
	return &logrusLogger{entry: logrus.NewEntry(l)}
}

func (l *logrusLogger) Debug(msg string, fields ...observability.Field) {
	l.entry.WithFields(toFields(fields)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...observability.Field) {
	l.entry.WithFields(toFields(fields)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...observability.Field) {
	l.entry.WithFields(toFields(fields)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields ...observability.Field) {
	l.entry.WithFields(toFields(fields)).Error(msg)
}

func (l *logrusLogger) With(fields ...observability.Field) observability.Logger {
	return &logrusLogger{entry: l.entry.WithFields(toFields(fields))}
}

func toFields(fields []observability.Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key()] = f.Value()
	}
	return out
}
