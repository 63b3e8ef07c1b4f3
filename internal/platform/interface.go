// Package platform defines the abstract factory that the device connection
// and vendor property set components are built against, so a non-Windows
// build can link a stub implementation instead of failing to compile.
package platform

import "github.com/allanhanan/duvc-ctl/core"

// Connection is the per-device handle the façade and capability scanner
// drive; on Windows it is satisfied by the adapter around
// *windows.DeviceConnection in factory_windows.go, and by nothing on other
// platforms (Bridge.CreateConnection always errors there).
type Connection interface {
	Get(prop core.CamProp) core.Result[core.PropSetting]
	Set(prop core.CamProp, val core.PropSetting) core.ResultVoid
	GetRange(prop core.CamProp) core.Result[core.PropRange]

	GetVid(prop core.VidProp) core.Result[core.PropSetting]
	SetVid(prop core.VidProp, val core.PropSetting) core.ResultVoid
	GetRangeVid(prop core.VidProp) core.Result[core.PropRange]

	// IsValid reports whether the connection is still open; an invalidated
	// connection answers every operation with DeviceNotFound until dropped.
	IsValid() bool

	// VendorSet returns the vendor property bridge for this connection's
	// device, creating it lazily. Never nil; errors surface per-call.
	VendorSet() VendorPropertySet

	// Close releases the connection's host references, in reverse
	// construction order, idempotently.
	Close() error
}

// VendorPropertySet is the opaque (GUID, property_id) bridge for vendor
// extensions.
type VendorPropertySet interface {
	QuerySupport(set core.GUID, id uint32) core.Result[uint32]
	GetProperty(set core.GUID, id uint32) core.Result[[]byte]
	SetProperty(set core.GUID, id uint32, data []byte) core.ResultVoid
	IsValid() bool
	Close() error
}

// Bridge is the abstract factory for enumeration, presence checks, and
// connection construction. The Windows implementation backs it with
// DirectShow; Bridge for any other GOOS is the null implementation in
// stub.go.
type Bridge interface {
	ListDevices() core.Result[[]core.Device]
	IsDeviceConnected(dev core.Device) core.Result[bool]
	FindDeviceByPath(path string) core.Result[core.Device]
	CreateConnection(dev core.Device) (Connection, *core.Error)
}
