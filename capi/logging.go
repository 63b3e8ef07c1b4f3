package capi

import "github.com/allanhanan/duvc-ctl/internal/logging"

// LogMessageCallback mirrors the C surface's set_log_callback signature
// minus user_data.
type LogMessageCallback func(level LogLevel, component, message string)

var currentLogCallback LogMessageCallback

// SetLogCallback installs cb as the log sink at or above level; passing a
// nil cb uninstalls it, leaving only the stderr and in-memory log.
func SetLogCallback(cb LogMessageCallback, level LogLevel) {
	currentLogCallback = cb
	if cb == nil {
		logging.SetCallback(nil, logging.Level(level))
		return
	}
	logging.SetCallback(func(l logging.Level, component, message string) {
		cb(LogLevel(l), component, message)
	}, logging.Level(level))
}

// ResetLogCallback uninstalls any log callback, leaving only the stderr and
// in-memory log. Called by Shutdown as the last step of teardown.
func ResetLogCallback() {
	currentLogCallback = nil
	logging.SetCallback(nil, logging.Debug)
}

// SetLogLevel changes the installed callback's threshold without changing
// the callback itself.
func SetLogLevel(level LogLevel) {
	logging.SetCallback(func(l logging.Level, component, message string) {
		if currentLogCallback != nil {
			currentLogCallback(LogLevel(l), component, message)
		}
	}, logging.Level(level))
}

// LogMessage emits one line at level through the named component's logger,
// the C surface's generic logging entry point.
func LogMessage(level LogLevel, component, message string) {
	l := logging.For(component)
	switch level {
	case LogDebug:
		l.Debugf("%s", message)
	case LogInfo:
		l.Infof("%s", message)
	case LogWarning:
		l.Warningf("%s", message)
	case LogError:
		l.Errorf("%s", message)
	case LogCritical:
		l.Criticalf("%s", message)
	}
}
