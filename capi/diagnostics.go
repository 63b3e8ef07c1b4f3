package capi

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/logging"
)

// lastError is a process-wide "last error" slot rather than a true
// per-thread one: cgo calls into Go run on whatever OS thread cgo picked,
// and Go's goroutine scheduler gives no stable identity to key a
// thread-local map on, so every GetLastErrorDetails call after a failing
// operation on any thread sees the most recent failure process-wide.
var (
	lastErrorMu sync.Mutex
	lastError   *core.Error
)

// RecordLastError stores err as the process's last error and updates the
// running operation statistics; every capi entry point that can fail
// should call it with its result before returning.
func RecordLastError(err *core.Error) {
	lastErrorMu.Lock()
	if err != nil {
		lastError = err
	}
	lastErrorMu.Unlock()

	code := core.Success
	if err != nil {
		code = err.Code
	}
	logging.RecordOperation(code)
}

// GetLastErrorDetails copies the last recorded error's description into
// buf using the buffer-sizing idiom. An empty string (not BufferTooSmall)
// is reported when no error has been recorded yet.
func GetLastErrorDetails(buf []byte) (int, int, ResultCode) {
	lastErrorMu.Lock()
	err := lastError
	lastErrorMu.Unlock()

	if err == nil {
		return CopyString("", buf)
	}
	return CopyString(err.Description(), buf)
}

// ClearLastError drops the stored last error.
func ClearLastError() {
	lastErrorMu.Lock()
	lastError = nil
	lastErrorMu.Unlock()
}

// GetErrorStatistics copies the running statistics report (JSON form) into
// buf using the buffer-sizing idiom.
func GetErrorStatistics(buf []byte) (int, int, ResultCode) {
	return CopyString(logging.StatisticsJSON(), buf)
}

// ResetErrorStatistics zeroes every counter.
func ResetErrorStatistics() {
	logging.ResetStatistics()
}

// SuggestErrorResolution copies remediation hints for code, one per line,
// into buf using the buffer-sizing idiom.
func SuggestErrorResolution(code ResultCode, buf []byte) (int, int, ResultCode) {
	hints := logging.SuggestResolution(toCoreCode(code))
	text := ""
	for i, h := range hints {
		if i > 0 {
			text += "\n"
		}
		text += h
	}
	return CopyString(text, buf)
}

// IsDeviceError, IsPermissionError, IsTemporaryError and ShouldRetryOperation
// classify a ResultCode for caller-driven retry loops.
func IsDeviceError(code ResultCode) bool     { return toCoreCode(code).IsDeviceError() }
func IsPermissionError(code ResultCode) bool { return toCoreCode(code).IsPermissionError() }
func IsTemporaryError(code ResultCode) bool  { return toCoreCode(code).IsTemporary() }
func ShouldRetryOperation(code ResultCode) bool {
	return logging.ShouldRetry(toCoreCode(code))
}

var toCoreMap = map[ResultCode]core.ErrorCode{
	Success:                   core.Success,
	ErrorDeviceNotFound:       core.DeviceNotFound,
	ErrorDeviceBusy:           core.DeviceBusy,
	ErrorPropertyNotSupported: core.PropertyNotSupported,
	ErrorInvalidValue:         core.InvalidValue,
	ErrorPermissionDenied:     core.PermissionDenied,
	ErrorSystemError:          core.SystemError,
	ErrorInvalidArgument:      core.InvalidArgument,
	ErrorNotImplemented:       core.NotImplemented,
	ErrorConnectionFailed:     core.ConnectionFailed,
	ErrorTimeout:              core.Timeout,
	ErrorBufferTooSmall:       core.BufferTooSmall,
}

func toCoreCode(code ResultCode) core.ErrorCode {
	if c, ok := toCoreMap[code]; ok {
		return c
	}
	return core.SystemError
}

// DiagnosticInfo renders a multi-line report of platform, version,
// host-stack availability, and running counters.
func DiagnosticInfo() string {
	hostAvailable := "no"
	if runtime.GOOS == "windows" {
		hostAvailable = "yes"
	}
	return fmt.Sprintf(
		"duvc-ctl diagnostic report\nPlatform: %s/%s\nVersion: %s\nHost stack available: %s\nInitialized: %v\n\n%s",
		runtime.GOOS, runtime.GOARCH, VersionText(), hostAvailable, IsInitialized(), logging.StatisticsText())
}
