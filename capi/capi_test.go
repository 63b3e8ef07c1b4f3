package capi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanhanan/duvc-ctl/core"
)

func TestCopyStringReportsRequiredSizeWhenBufferTooSmall(t *testing.T) {
	n, required, code := CopyString("hello", make([]byte, 3))
	assert.Equal(t, 0, n)
	assert.Equal(t, 6, required)
	assert.Equal(t, ErrorBufferTooSmall, code)
}

func TestCopyStringSucceedsWithRoomForNUL(t *testing.T) {
	buf := make([]byte, 6)
	n, required, code := CopyString("hello", buf)
	assert.Equal(t, 5, n)
	assert.Equal(t, 6, required)
	assert.Equal(t, Success, code)
	assert.Equal(t, byte(0), buf[5])
	assert.Equal(t, "hello", string(buf[:5]))
}

func TestFromErrorMapsEveryCoreCode(t *testing.T) {
	assert.Equal(t, Success, FromError(nil))
	assert.Equal(t, ErrorDeviceNotFound, FromError(core.NewError(core.DeviceNotFound, "")))
	assert.Equal(t, ErrorDeviceBusy, FromError(core.NewError(core.DeviceBusy, "")))
	assert.Equal(t, ErrorPropertyNotSupported, FromError(core.NewError(core.PropertyNotSupported, "")))
	assert.Equal(t, ErrorInvalidValue, FromError(core.NewError(core.InvalidValue, "")))
	assert.Equal(t, ErrorPermissionDenied, FromError(core.NewError(core.PermissionDenied, "")))
	assert.Equal(t, ErrorSystemError, FromError(core.NewError(core.SystemError, "")))
	assert.Equal(t, ErrorInvalidArgument, FromError(core.NewError(core.InvalidArgument, "")))
	assert.Equal(t, ErrorNotImplemented, FromError(core.NewError(core.NotImplemented, "")))
	assert.Equal(t, ErrorConnectionFailed, FromError(core.NewError(core.ConnectionFailed, "")))
	assert.Equal(t, ErrorTimeout, FromError(core.NewError(core.Timeout, "")))
	assert.Equal(t, ErrorBufferTooSmall, FromError(core.NewError(core.BufferTooSmall, "")))
}

func TestCheckABICompatibility(t *testing.T) {
	same := uint32(VersionMajor)<<16 | uint32(VersionMinor)<<8
	assert.True(t, CheckABICompatibility(same))

	olderMinor := uint32(VersionMajor)<<16 | 0<<8
	assert.True(t, CheckABICompatibility(olderMinor))

	newerMinor := uint32(VersionMajor)<<16 | uint32(VersionMinor+1)<<8
	assert.False(t, CheckABICompatibility(newerMinor))

	differentMajor := uint32(VersionMajor+1)<<16 | uint32(VersionMinor)<<8
	assert.False(t, CheckABICompatibility(differentMajor))
}

func TestHandleRegistryPutGetRelease(t *testing.T) {
	reg := newHandleRegistry[string]()
	h := reg.Put("hello")

	v, ok := reg.Get(h)
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	reg.Release(h)
	_, ok = reg.Get(h)
	assert.False(t, ok)
}

func TestLastErrorRoundTrip(t *testing.T) {
	ClearLastError()
	buf := make([]byte, 64)
	_, _, code := GetLastErrorDetails(buf)
	assert.Equal(t, Success, code)

	RecordLastError(core.NewError(core.DeviceBusy, "camera in use"))
	n, _, code := GetLastErrorDetails(buf)
	require.Equal(t, Success, code)
	assert.Contains(t, string(buf[:n]), "DeviceBusy")

	ClearLastError()
	n, _, code = GetLastErrorDetails(buf)
	require.Equal(t, Success, code)
	assert.Equal(t, 0, n)
}

func TestDiagnosticClassifiers(t *testing.T) {
	assert.True(t, IsDeviceError(ErrorDeviceNotFound))
	assert.False(t, IsDeviceError(ErrorInvalidArgument))
	assert.True(t, IsPermissionError(ErrorPermissionDenied))
	assert.True(t, IsTemporaryError(ErrorDeviceBusy))
	assert.False(t, IsTemporaryError(ErrorInvalidArgument))
	assert.True(t, ShouldRetryOperation(ErrorTimeout))
}

func TestSuggestErrorResolutionWritesHints(t *testing.T) {
	buf := make([]byte, 512)
	n, _, code := SuggestErrorResolution(ErrorDeviceNotFound, buf)
	require.Equal(t, Success, code)
	assert.NotEmpty(t, string(buf[:n]))
}

func TestInitializeShutdownLifecycle(t *testing.T) {
	assert.False(t, IsInitialized())
	require.Equal(t, Success, Initialize())
	assert.True(t, IsInitialized())
	require.Equal(t, Success, Initialize())

	require.Equal(t, Success, Shutdown())
	assert.False(t, IsInitialized())
	require.Equal(t, Success, Shutdown())
}
