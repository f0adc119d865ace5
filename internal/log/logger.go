// Package log provides structured logging for the comparison core on top
// of logrus. It exposes a small fielded API: F builds a field, With attaches
// fields to a logger, and the package-level functions log through a default
// logger that Configure can redirect or switch to JSON output.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"dircomp/internal/errors"
)

// Field is one key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logging is the interface accepted by components that take an injected
// logger.
type Logging interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	With(fields ...Field) Logging
}

// Logger wraps a logrus logger and satisfies Logging.
type Logger struct {
	lr *logrus.Logger
}

// entry carries accumulated fields; returned by With so fields chain.
type entry struct {
	e *logrus.Entry
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput directs log output to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.lr.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON-formatted output.
func WithJSON() Option {
	return func(l *Logger) {
		l.lr.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithCaller includes the calling function in each entry.
func WithCaller() Option {
	return func(l *Logger) {
		l.lr.SetReportCaller(true)
	}
}

// NewLogger creates a logger writing timestamped text lines to stdout
// unless options say otherwise.
func NewLogger(opts ...Option) *Logger {
	lr := logrus.New()
	lr.SetOutput(os.Stdout)
	lr.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "2006-01-02 15:04:05",
		DisableColors:          true,
		DisableLevelTruncation: true,
	})
	lr.SetLevel(logrus.InfoLevel)
	l := &Logger{lr: lr}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var logger = NewLogger()

// Configure applies options to the package-level default logger.
func Configure(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

// SetDebug toggles debug-level logging on the default logger.
func SetDebug(debug bool) {
	if debug {
		logger.lr.SetLevel(logrus.DebugLevel)
	} else {
		logger.lr.SetLevel(logrus.InfoLevel)
	}
}

func (l *Logger) Debug(args ...interface{}) { l.lr.Debug(args...) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.lr.Debugf(format, args...) }

func (l *Logger) Info(args ...interface{}) { l.lr.Info(args...) }

func (l *Logger) Infof(format string, args ...interface{}) { l.lr.Infof(format, args...) }

func (l *Logger) Warn(args ...interface{}) { l.lr.Warn(args...) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.lr.Warnf(format, args...) }

func (l *Logger) Error(args ...interface{}) { l.lr.Error(args...) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.lr.Errorf(format, args...) }

// With returns a logger with the given fields attached to every entry.
func (l *Logger) With(fields ...Field) Logging {
	return entry{e: l.lr.WithFields(toLogrus(fields))}
}

func (en entry) Debug(args ...interface{}) { en.e.Debug(args...) }

func (en entry) Debugf(format string, args ...interface{}) { en.e.Debugf(format, args...) }

func (en entry) Info(args ...interface{}) { en.e.Info(args...) }

func (en entry) Infof(format string, args ...interface{}) { en.e.Infof(format, args...) }

func (en entry) Warn(args ...interface{}) { en.e.Warn(args...) }

func (en entry) Warnf(format string, args ...interface{}) { en.e.Warnf(format, args...) }

func (en entry) Error(args ...interface{}) { en.e.Error(args...) }

func (en entry) Errorf(format string, args ...interface{}) { en.e.Errorf(format, args...) }

func (en entry) With(fields ...Field) Logging {
	return entry{e: en.e.WithFields(toLogrus(fields))}
}

func toLogrus(fields []Field) logrus.Fields {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lf
}

// Package-level logging through the default logger.

// Debug logs a debug message
func Debug(args ...interface{}) { logger.Debug(args...) }

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// Info logs an info message
func Info(args ...interface{}) { logger.Info(args...) }

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warn logs a warning message
func Warn(args ...interface{}) { logger.Warn(args...) }

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

// Error logs an error message
func Error(args ...interface{}) { logger.Error(args...) }

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// LogWithFields returns the default logger with the given fields attached.
func LogWithFields(fields ...Field) Logging {
	return logger.With(fields...)
}

// LogWithError returns the default logger with fields describing err. Typed
// errors from internal/errors contribute their kind and path.
func LogWithError(err error) Logging {
	fields := []Field{F("error", err.Error())}
	kind := errors.KindOf(err)
	if kind != errors.Unknown {
		fields = append(fields, F("error_kind", kind.String()))
	}
	var entryErr *errors.EntryError
	if errors.As(err, &entryErr) && entryErr.Path() != "" {
		fields = append(fields, F("path", entryErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	return logger.With(fields...)
}

// LogError logs err at error level with its describing fields.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}
