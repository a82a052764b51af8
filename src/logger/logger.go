// Package logger provides the structured logger used across the module and
// bridges it to the raw Kafka client's logging hook, so client internals log
// through the same sink and level filtering as the application.
package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Logger wraps a zerolog.Logger and satisfies kgo.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New writes structured JSON logs to w at the given level.
func New(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Console writes human-readable logs to w, for CLI use.
func Console(w io.Writer, level zerolog.Level) *Logger {
	out := zerolog.ConsoleWriter{Out: w}
	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// Nop discards everything. Library-constructed clients default to this.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Zerolog returns the underlying logger for application logging.
func (l *Logger) Zerolog() *zerolog.Logger { return &l.zl }

// Level implements kgo.Logger.
func (l *Logger) Level() kgo.LogLevel {
	switch l.zl.GetLevel() {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return kgo.LogLevelDebug
	case zerolog.InfoLevel:
		return kgo.LogLevelInfo
	case zerolog.WarnLevel:
		return kgo.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return kgo.LogLevelError
	default:
		return kgo.LogLevelNone
	}
}

// Log implements kgo.Logger. keyvals are alternating key/value pairs.
func (l *Logger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	var ev *zerolog.Event
	switch level {
	case kgo.LogLevelDebug:
		ev = l.zl.Debug()
	case kgo.LogLevelInfo:
		ev = l.zl.Info()
	case kgo.LogLevelWarn:
		ev = l.zl.Warn()
	case kgo.LogLevelError:
		ev = l.zl.Error()
	default:
		return
	}
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		ev = ev.Interface(key, keyvals[i+1])
	}
	ev.Msg(msg)
}
