package capi

import (
	"github.com/allanhanan/duvc-ctl/camera"
	"github.com/allanhanan/duvc-ctl/core"
)

// CopyString implements the buffer-sizing idiom every C string getter
// uses: if buf is big enough for s plus its trailing NUL, it is copied in
// and Success is returned; otherwise nothing is written, requiredSize is
// set to len(s)+1, and ErrorBufferTooSmall is returned. A caller probing
// for the required size passes a zero-length buf.
func CopyString(s string, buf []byte) (n int, requiredSize int, code ResultCode) {
	requiredSize = len(s) + 1
	if len(buf) < requiredSize {
		return 0, requiredSize, ErrorBufferTooSmall
	}
	copy(buf, s)
	buf[len(s)] = 0
	return len(s), requiredSize, Success
}

// ListDevices enumerates every present device and registers each under a
// fresh handle; the returned handles are owned by the registry until
// FreeDeviceList releases them.
func ListDevices() ([]uintptr, ResultCode) {
	result := camera.ListDevices()
	if result.IsError() {
		return nil, FromError(result.Error())
	}

	list := result.Value()
	handles := make([]uintptr, len(list))
	for i, dev := range list {
		handles[i] = devices.Put(dev)
	}
	return handles, Success
}

// FreeDeviceList releases every handle in handles without affecting any
// connection opened against the underlying devices.
func FreeDeviceList(handles []uintptr) {
	for _, h := range handles {
		devices.Release(h)
	}
}

// DeviceName returns the handle's device name via the buffer-sizing idiom.
func DeviceName(handle uintptr, buf []byte) (int, int, ResultCode) {
	dev, ok := devices.Get(handle)
	if !ok {
		return 0, 0, ErrorInvalidArgument
	}
	return CopyString(dev.Name, buf)
}

// DevicePath returns the handle's device path via the buffer-sizing idiom.
func DevicePath(handle uintptr, buf []byte) (int, int, ResultCode) {
	dev, ok := devices.Get(handle)
	if !ok {
		return 0, 0, ErrorInvalidArgument
	}
	return CopyString(dev.Path, buf)
}

// IsDeviceConnected reports whether the handle's device currently resolves
// to a live device.
func IsDeviceConnected(handle uintptr) (bool, ResultCode) {
	dev, ok := devices.Get(handle)
	if !ok {
		return false, ErrorInvalidArgument
	}
	result := camera.IsDeviceConnected(dev)
	if result.IsError() {
		return false, FromError(result.Error())
	}
	return result.Value(), Success
}

// OpenConnection opens (or reuses, via the pool underneath camera.Camera)
// a connection to the handle's device and registers it under a new
// connection handle.
func OpenConnection(deviceHandle uintptr) (uintptr, ResultCode) {
	dev, ok := devices.Get(deviceHandle)
	if !ok {
		return 0, ErrorInvalidArgument
	}

	cam, err := camera.Open(dev)
	if err != nil {
		return 0, FromError(err)
	}
	return connections.Put(cam), Success
}

// CloseConnection releases the connection handle's underlying Camera.
func CloseConnection(handle uintptr) ResultCode {
	cam, ok := connections.Get(handle)
	if !ok {
		return ErrorInvalidArgument
	}
	connections.Release(handle)
	cam.Close()
	return Success
}

func lookupConnection(handle uintptr) (*camera.Camera, ResultCode) {
	cam, ok := connections.Get(handle)
	if !ok {
		return nil, ErrorInvalidArgument
	}
	return cam, Success
}

func lookupCapabilities(handle uintptr) (*core.DeviceCapabilities, ResultCode) {
	caps, ok := capabilities.Get(handle)
	if !ok {
		return nil, ErrorInvalidArgument
	}
	return caps, Success
}
