package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel đọc level từ chuỗi cấu hình, mặc định InfoLevel
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface bằng zerolog
type DefaultLogger struct {
	level Level
	zl    zerolog.Logger
}

// NewDefaultLogger tạo logger ghi ra stdout
func NewDefaultLogger(level Level) *DefaultLogger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter tạo logger ghi ra w
func NewWithWriter(w io.Writer, level Level) *DefaultLogger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = time.RFC3339
	return &DefaultLogger{
		level: level,
		zl:    zl,
	}
}

// With trả về logger con gắn thêm field component
func (l *DefaultLogger) With(component string) *DefaultLogger {
	return &DefaultLogger{
		level: l.level,
		zl:    l.zl.With().Str("component", component).Logger(),
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.zl.Info().Msg(fmt.Sprintf(format, v...))
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.zl.Error().Msg(fmt.Sprintf(format, v...))
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.zl.Debug().Msg(fmt.Sprintf(format, v...))
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}

// Nop trả về logger bỏ qua mọi thông điệp
func Nop() Logger {
	return nopLogger{}
}

// Component gắn tên component nếu l hỗ trợ, ngược lại trả về l
func Component(l Logger, name string) Logger {
	if d, ok := l.(*DefaultLogger); ok {
		return d.With(name)
	}
	return l
}
