package core

import "fmt"

// ErrorCode classifies why a duvc operation failed.
type ErrorCode int

const (
	Success ErrorCode = iota
	DeviceNotFound
	DeviceBusy
	PropertyNotSupported
	InvalidValue
	PermissionDenied
	SystemError
	InvalidArgument
	NotImplemented
	ConnectionFailed
	Timeout
	BufferTooSmall
)

var errorCodeNames = map[ErrorCode]string{
	Success:              "Success",
	DeviceNotFound:       "DeviceNotFound",
	DeviceBusy:           "DeviceBusy",
	PropertyNotSupported: "PropertyNotSupported",
	InvalidValue:         "InvalidValue",
	PermissionDenied:     "PermissionDenied",
	SystemError:          "SystemError",
	InvalidArgument:      "InvalidArgument",
	NotImplemented:       "NotImplemented",
	ConnectionFailed:     "ConnectionFailed",
	Timeout:              "Timeout",
	BufferTooSmall:       "BufferTooSmall",
}

// String renders the canonical name used both for Go %v formatting and for
// the C ABI's string decoders.
func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// IsTemporary reports whether a caller-driven retry loop might succeed.
// Only DeviceBusy, Timeout and ConnectionFailed qualify.
func (c ErrorCode) IsTemporary() bool {
	switch c {
	case DeviceBusy, Timeout, ConnectionFailed:
		return true
	default:
		return false
	}
}

// IsDeviceError reports whether the failure is about device presence or
// access rather than argument/programmer error.
func (c ErrorCode) IsDeviceError() bool {
	switch c {
	case DeviceNotFound, DeviceBusy, ConnectionFailed:
		return true
	default:
		return false
	}
}

// IsPermissionError reports whether the failure is an access-control denial.
func (c ErrorCode) IsPermissionError() bool {
	return c == PermissionDenied
}

// Error is the (code, message) pair every fallible core operation produces.
type Error struct {
	Code    ErrorCode
	Message string
}

// NewError constructs an Error, trimming no whitespace from message — the
// caller is expected to pass a finished sentence or fragment.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Description renders "<code>: <message>", omitting the message when empty.
func (e *Error) Description() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Code.String() + ": " + e.Message
}

func (e *Error) Error() string {
	return e.Description()
}

// Wrap attaches additional context to an existing error's message without
// changing its code, the way the façade annotates lower-layer failures with
// component/operation names.
func (e *Error) Wrap(context string) *Error {
	if context == "" {
		return e
	}
	msg := context
	if e.Message != "" {
		msg = context + ": " + e.Message
	}
	return &Error{Code: e.Code, Message: msg}
}

// AsError adapts an *Error to the standard error interface for callers that
// prefer idiomatic Go error handling over Result[T].
func (e *Error) AsError() error {
	if e == nil {
		return nil
	}
	return e
}
