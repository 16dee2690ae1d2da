// Package log is the structured logger shared by every vshell package.
// It wraps logrus with a small field API so call sites read the same way
// everywhere: log.LogWithFields(log.F("path", p)).Warn("...").
package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"vshell/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	mu      sync.RWMutex
	logger  = NewLogger()
)

// Field is a single structured key/value pair.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

type options struct {
	out  io.Writer
	json bool
	file string
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) { o.json = true }
}

// WithFile appends log lines to the file at path. When the file cannot be
// opened the logger falls back to discarding output; the browser owns the
// terminal and must not be written over.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// Logger is a logrus entry plus the file it may own.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogger creates a logger. Without options it writes text lines to stderr.
func NewLogger(opts ...Option) *Logger {
	o := &options{out: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	base := logrus.New()
	base.SetLevel(logrus.DebugLevel)
	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l := &Logger{}
	base.SetOutput(o.out)
	if o.file != "" {
		f, err := os.OpenFile(o.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			base.SetOutput(io.Discard)
		} else {
			base.SetOutput(f)
			l.file = f
		}
	}
	l.entry = logrus.NewEntry(base)
	return l
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	l := NewLogger(opts...)
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Close releases the log file, if the package logger owns one.
func Close() error {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return l.Close()
}

// SetDebug toggles Debug output for every logger.
func SetDebug(debug bool) {
	mu.Lock()
	isDebug = debug
	mu.Unlock()
}

func debugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return isDebug
}

func current() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(lf), file: l.file}
}

// WithError attaches err and, for application errors, its kind and subject.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}
	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}

	var devErr *errors.DeviceError
	var launchErr *errors.LaunchError
	var fileErr *errors.FileError
	var configErr *errors.ConfigError
	switch {
	case errors.As(err, &devErr):
		if devErr.Path() != "" {
			fields = append(fields, F("path", devErr.Path()))
		}
	case errors.As(err, &launchErr):
		if launchErr.Path() != "" {
			fields = append(fields, F("path", launchErr.Path()))
		}
		if len(launchErr.Command()) > 0 {
			fields = append(fields, F("command", strings.Join(launchErr.Command(), " ")))
		}
	case errors.As(err, &fileErr):
		if fileErr.Path() != "" {
			fields = append(fields, F("path", fileErr.Path()))
		}
	case errors.As(err, &configErr):
		if configErr.Param() != "" {
			fields = append(fields, F("param", configErr.Param()))
		}
	}
	return l.With(fields...)
}

// Close releases the owned log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) Info(msg string)                           { l.entry.Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(msg string)                           { l.entry.Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(msg string)                          { l.entry.Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// Debug logs only when SetDebug(true) was called.
func (l *Logger) Debug(msg string) {
	if debugEnabled() {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only in debug mode.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if debugEnabled() {
		l.entry.Debugf(format, args...)
	}
}

// LogWithFields returns the package logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return current().With(fields...)
}

// LogWithError returns the package logger with err attached.
func LogWithError(err error) *Logger {
	return current().WithError(err)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	current().WithError(err).Error(msg)
}

func Info(msg string)                           { current().Info(msg) }
func Infof(format string, args ...interface{})  { current().Infof(format, args...) }
func Warn(msg string)                           { current().Warn(msg) }
func Warnf(format string, args ...interface{})  { current().Warnf(format, args...) }
func Error(msg string)                          { current().Error(msg) }
func Errorf(format string, args ...interface{}) { current().Errorf(format, args...) }
func Debug(msg string)                          { current().Debug(msg) }
func Debugf(format string, args ...interface{}) { current().Debugf(format, args...) }
