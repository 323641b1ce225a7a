package logs

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used across octopus
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)
}

// LogrusLoggerProperties configures a logger created with NewLogrus
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where entries are written. It defaults to stderr
	Output io.Writer

	// Formatter defaults to a logrus.TextFormatter
	Formatter logrus.Formatter
}

// LogrusLogger implements Logger on top of logrus
type LogrusLogger struct {
	logger *logrus.Logger
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

// NewLogrus creates a Logger that writes its entries through logrus
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Formatter != nil {
		logger.SetFormatter(props.Formatter)
	}

	return &LogrusLogger{logger: logger}
}

// NewNop creates a Logger that discards every entry
func NewNop() *LogrusLogger {
	return NewLogrus(LogrusLoggerProperties{
		Level:  logrus.PanicLevel,
		Output: io.Discard,
	})
}

func (l *LogrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := logrusFields{}
	if id := GetTraceID(ctx); id != 0 {
		fields["trace_id"] = id
	}

	if loggable != nil {
		loggable.Log(fields)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger for LogrusLogger
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	if l.logger.IsLevelEnabled(logrus.DebugLevel) {
		l.entry(ctx, loggable).Debug(msg)
	}
}

// Info implementation of Logger for LogrusLogger
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	if l.logger.IsLevelEnabled(logrus.InfoLevel) {
		l.entry(ctx, loggable).Info(msg)
	}
}

// Warn implementation of Logger for LogrusLogger
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	if l.logger.IsLevelEnabled(logrus.WarnLevel) {
		l.entry(ctx, loggable).Warn(msg)
	}
}

// Error implementation of Logger for LogrusLogger
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	if l.logger.IsLevelEnabled(logrus.ErrorLevel) {
		l.entry(ctx, loggable).Error(msg)
	}
}
