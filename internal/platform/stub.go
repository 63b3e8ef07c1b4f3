//go:build !windows

package platform

import "github.com/allanhanan/duvc-ctl/core"

// nullBridge is the non-Windows Bridge: it enumerates nothing and refuses
// every connection attempt with NotImplemented. There is no other-OS
// backend; this keeps the package linkable off Windows.
type nullBridge struct{}

// NewBridge returns the platform Bridge for the running GOOS. On every
// platform but Windows that is the null stub.
func NewBridge() Bridge {
	return nullBridge{}
}

func (nullBridge) ListDevices() core.Result[[]core.Device] {
	return core.Ok[[]core.Device](nil)
}

func (nullBridge) IsDeviceConnected(core.Device) core.Result[bool] {
	return core.Ok(false)
}

func (nullBridge) FindDeviceByPath(path string) core.Result[core.Device] {
	return core.Errf[core.Device](core.DeviceNotFound, "no devices on this platform: "+path)
}

func (nullBridge) CreateConnection(core.Device) (Connection, *core.Error) {
	return nil, core.NewError(core.NotImplemented, "device connections are not implemented on this platform")
}
