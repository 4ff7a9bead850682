// Package logx adapts zerolog to the medium.Logger interface.
//
// Arguments are slog-style alternating key/value pairs. A trailing key
// without a value is logged under "!BADKEY", like slog does.
package logx

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Logger writes medium log calls to a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New wraps zl.
func New(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// NewConsole creates a human readable logger writing to w.
func NewConsole(w io.Writer, level string) *Logger {
	zerolog.ErrorFieldName = "err"

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	zl := zerolog.New(cw).Level(ParseLevel(level, zerolog.InfoLevel)).With().Timestamp().Logger()
	return New(zl)
}

// Zerolog returns the underlying logger.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }

func (l *Logger) Debug(msg string, args ...any) { l.log(l.zl.Debug(), msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(l.zl.Info(), msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(l.zl.Warn(), msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(l.zl.Error(), msg, args) }

func (l *Logger) log(e *zerolog.Event, msg string, args []any) {
	if e == nil {
		return
	}
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if i+1 >= len(args) {
			e.Interface("!BADKEY", args[i])
			break
		}
		field(e, key, args[i+1])
	}
	e.Msg(msg)
}

func field(e *zerolog.Event, key string, v any) {
	switch v := v.(type) {
	case string:
		e.Str(key, v)
	case int:
		e.Int(key, v)
	case int64:
		e.Int64(key, v)
	case bool:
		e.Bool(key, v)
	case float64:
		e.Float64(key, v)
	case time.Duration:
		e.Dur(key, v)
	case time.Time:
		e.Time(key, v)
	case error:
		if key == "error" || key == "err" {
			e.AnErr(zerolog.ErrorFieldName, v)
			return
		}
		e.AnErr(key, v)
	case fmt.Stringer:
		e.Stringer(key, v)
	default:
		e.Interface(key, v)
	}
}

// ParseLevel maps a case-insensitive level name to a zerolog level.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return def
	}
}
