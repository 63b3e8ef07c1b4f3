// Package duvc controls pan/tilt/zoom/focus/exposure and image-processing
// properties on UVC-class video capture devices. On Windows it drives the
// DirectShow/KsPropertySet host stack directly; on every other platform it
// links a null backend that enumerates nothing and refuses connections
// with NotImplemented, so cross-platform callers can depend on this
// package unconditionally.
//
// Most callers only need camera.Open, camera.ListDevices, and the Camera
// methods; this package re-exports the common entry points and core
// types so a simple program needs only this one import.
package duvc

import (
	"github.com/allanhanan/duvc-ctl/camera"
	"github.com/allanhanan/duvc-ctl/core"
)

type (
	Device             = core.Device
	PropSetting        = core.PropSetting
	PropRange          = core.PropRange
	CamProp            = core.CamProp
	VidProp            = core.VidProp
	CamMode            = core.CamMode
	Error              = core.Error
	ErrorCode          = core.ErrorCode
	Camera             = camera.Camera
	DeviceCapabilities = core.DeviceCapabilities
)

const (
	Auto   = core.Auto
	Manual = core.Manual
)

// ListDevices enumerates every currently-present video-input device.
func ListDevices() core.Result[[]core.Device] {
	return camera.ListDevices()
}

// IsDeviceConnected reports whether dev currently resolves to a live
// device.
func IsDeviceConnected(dev core.Device) core.Result[bool] {
	return camera.IsDeviceConnected(dev)
}

// Open returns a Camera bound to dev.
func Open(dev core.Device) (*camera.Camera, *core.Error) {
	return camera.Open(dev)
}

// OpenAt returns a Camera bound to the device at index in the current
// enumeration.
func OpenAt(index int) (*camera.Camera, *core.Error) {
	return camera.OpenAt(index)
}

// OpenByPath returns a Camera bound to the device with the given host
// device path.
func OpenByPath(path string) (*camera.Camera, *core.Error) {
	return camera.OpenByPath(path)
}
