package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "DeviceBusy", DeviceBusy.String())
	assert.Equal(t, "ErrorCode(999)", ErrorCode(999).String())
}

func TestErrorCodeIsTemporary(t *testing.T) {
	assert.True(t, DeviceBusy.IsTemporary())
	assert.True(t, Timeout.IsTemporary())
	assert.True(t, ConnectionFailed.IsTemporary())
	assert.False(t, InvalidArgument.IsTemporary())
}

func TestErrorCodeIsDeviceError(t *testing.T) {
	assert.True(t, DeviceNotFound.IsDeviceError())
	assert.False(t, InvalidArgument.IsDeviceError())
}

func TestErrorCodeIsPermissionError(t *testing.T) {
	assert.True(t, PermissionDenied.IsPermissionError())
	assert.False(t, SystemError.IsPermissionError())
}

func TestErrorDescriptionOmitsEmptyMessage(t *testing.T) {
	assert.Equal(t, "DeviceNotFound", NewError(DeviceNotFound, "").Description())
	assert.Equal(t, "DeviceNotFound: camera unplugged", NewError(DeviceNotFound, "camera unplugged").Description())
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = NewError(SystemError, "boom")
	assert.Equal(t, "SystemError: boom", err.Error())
}

func TestErrorWrapPrependsContext(t *testing.T) {
	base := NewError(ConnectionFailed, "handle closed")
	wrapped := base.Wrap("acquiring pooled connection")
	assert.Equal(t, "acquiring pooled connection: handle closed", wrapped.Message)
	assert.Equal(t, ConnectionFailed, wrapped.Code)
}

func TestErrorWrapWithEmptyContextReturnsSameError(t *testing.T) {
	base := NewError(ConnectionFailed, "handle closed")
	assert.Same(t, base, base.Wrap(""))
}

func TestErrorAsErrorNilReceiverIsNilInterface(t *testing.T) {
	var e *Error
	assert.Nil(t, e.AsError())
}
