//go:build windows

package platform

import (
	"github.com/allanhanan/duvc-ctl/core"
	winimpl "github.com/allanhanan/duvc-ctl/internal/platform/windows"
)

// windowsConnection adapts winimpl.DeviceConnection to Connection. Every
// method but VendorSet is promoted directly from the embedded type since
// their signatures already use only core types; VendorSet needs overriding
// because it returns the concrete *winimpl.KsPropertySet rather than the
// VendorPropertySet interface this package declares.
type windowsConnection struct {
	*winimpl.DeviceConnection
}

func (w windowsConnection) VendorSet() VendorPropertySet {
	return w.DeviceConnection.VendorSet()
}

// windowsBridge adapts winimpl.Bridge to Bridge, overriding CreateConnection
// for the same reason windowsConnection overrides VendorSet.
type windowsBridge struct {
	winimpl.Bridge
}

func (b windowsBridge) CreateConnection(dev core.Device) (Connection, *core.Error) {
	conn, err := b.Bridge.CreateConnection(dev)
	if err != nil {
		return nil, err
	}
	return windowsConnection{conn}, nil
}

// NewBridge returns the platform Bridge for the running GOOS; on Windows
// that is the DirectShow-backed implementation in internal/platform/windows.
func NewBridge() Bridge {
	return windowsBridge{}
}
