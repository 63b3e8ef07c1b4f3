// Package logging provides the library-wide logger: a zerolog.Logger that
// always writes into a small in-memory ring buffer and to stderr with a
// timestamp prefix, whether or not a callback is installed, plus an
// optional severity-filtered callback for consumers (the façade, the C
// surface) that want log lines pushed to them directly.
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level mirrors the five severities the C surface and the callback API
// expose; it maps onto zerolog.Level rather than replacing it.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
	Critical
)

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warning:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	case Critical:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Callback receives every log line at or above the installed threshold.
type Callback func(level Level, component, message string)

var (
	mu       sync.Mutex
	memory   = newCircularBuffer(4)
	console  = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	logger   = zerolog.New(zerolog.MultiLevelWriter(console, memory)).With().Timestamp().Logger()
	callback Callback
	minLevel = Critical + 1 // no callback installed: nothing passes
)

// SetCallback installs cb as the sink for every log line at or above
// minLevel. Passing a nil cb uninstalls it; lines still go to stderr and
// the ring buffer.
func SetCallback(cb Callback, level Level) {
	mu.Lock()
	defer mu.Unlock()
	callback = cb
	if cb == nil {
		minLevel = Critical + 1
	} else {
		minLevel = level
	}
}

// Snapshot returns the buffered log text accumulated since the ring
// buffer last wrapped.
func Snapshot() string {
	mu.Lock()
	defer mu.Unlock()
	return memory.String()
}

// For returns a component-scoped logger; component is attached to every
// record as a field, the way go2rtc scopes loggers per module name.
func For(component string) Logger {
	return Logger{component: component}
}

// Logger is a thin component-scoped wrapper. Methods are cheap to call
// even when nothing is listening, since zerolog itself short-circuits
// disabled levels and the callback check is a single comparison.
type Logger struct {
	component string
}

func (l Logger) log(level Level, msg string) {
	ev := logger.WithLevel(level.zerolog()).Str("component", l.component)
	ev.Msg(msg)

	mu.Lock()
	cb := callback
	active := level >= minLevel
	mu.Unlock()
	if active && cb != nil {
		cb(level, l.component, msg)
	}
}

func (l Logger) Debugf(format string, args ...any)    { l.log(Debug, sprintf(format, args)) }
func (l Logger) Infof(format string, args ...any)     { l.log(Info, sprintf(format, args)) }
func (l Logger) Warningf(format string, args ...any)  { l.log(Warning, sprintf(format, args)) }
func (l Logger) Errorf(format string, args ...any)    { l.log(Error, sprintf(format, args)) }
func (l Logger) Criticalf(format string, args ...any) { l.log(Critical, sprintf(format, args)) }
