// Package capi holds the ABI-stable types and orchestration logic behind
// the C surface exported by cmd/libduvc; it has no cgo of its own so it
// stays testable with plain Go tooling, and cmd/libduvc's //export
// functions are thin cgo-typed wrappers around it.
package capi

import "github.com/allanhanan/duvc-ctl/core"

// ResultCode mirrors duvc_result_t: every C-facing call returns one of
// these instead of core.ErrorCode directly, so the integer values stay
// fixed regardless of how core.ErrorCode's own ordering evolves.
type ResultCode int32

const (
	Success ResultCode = iota
	ErrorDeviceNotFound
	ErrorDeviceBusy
	ErrorPropertyNotSupported
	ErrorInvalidValue
	ErrorPermissionDenied
	ErrorSystemError
	ErrorInvalidArgument
	ErrorNotImplemented
	ErrorConnectionFailed
	ErrorTimeout
	ErrorBufferTooSmall
)

var fromCoreCode = map[core.ErrorCode]ResultCode{
	core.DeviceNotFound:       ErrorDeviceNotFound,
	core.DeviceBusy:           ErrorDeviceBusy,
	core.PropertyNotSupported: ErrorPropertyNotSupported,
	core.InvalidValue:         ErrorInvalidValue,
	core.PermissionDenied:     ErrorPermissionDenied,
	core.SystemError:          ErrorSystemError,
	core.InvalidArgument:      ErrorInvalidArgument,
	core.NotImplemented:       ErrorNotImplemented,
	core.ConnectionFailed:     ErrorConnectionFailed,
	core.Timeout:              ErrorTimeout,
	core.BufferTooSmall:       ErrorBufferTooSmall,
}

// FromError converts a core.Error to its ABI result code; nil is Success.
func FromError(err *core.Error) ResultCode {
	if err == nil {
		return Success
	}
	if code, ok := fromCoreCode[err.Code]; ok {
		return code
	}
	return ErrorSystemError
}

// PropSetting mirrors prop_setting_t's fixed layout: a 4-byte value
// followed by a 4-byte mode tag, no hidden padding.
type PropSetting struct {
	Value int32
	Mode  int32
}

// PropRange mirrors prop_range_t.
type PropRange struct {
	Min         int32
	Max         int32
	Step        int32
	DefaultVal  int32
	DefaultMode int32
}

func ToPropSetting(s core.PropSetting) PropSetting {
	return PropSetting{Value: s.Value, Mode: int32(s.Mode)}
}

func FromPropSetting(s PropSetting) core.PropSetting {
	return core.PropSetting{Value: s.Value, Mode: core.CamMode(s.Mode)}
}

func ToPropRange(r core.PropRange) PropRange {
	return PropRange{
		Min:         r.Min,
		Max:         r.Max,
		Step:        r.Step,
		DefaultVal:  r.DefaultVal,
		DefaultMode: int32(r.DefaultMode),
	}
}

// LogLevel mirrors duvc_log_level_t.
type LogLevel int32

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarning
	LogError
	LogCritical
)
